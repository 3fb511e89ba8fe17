//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

// span is one finished scope. Times are nanoseconds since the recorder's epoch.
type span struct {
	name       string
	start, end int64
	depth      int
}

// recorder keeps the most recent finished spans, overwriting the oldest when full.
type recorder struct {
	mu    sync.Mutex
	on    bool
	epoch time.Time
	depth int
	spans []span
	next  int
	full  bool
}

var rec recorder

// Init enables recording, keeping at most capacity spans.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.on = true
	rec.epoch = time.Now()
	rec.depth = 0
	rec.spans = make([]span, capacity)
	rec.next, rec.full = 0, false
}

// Start opens a span and returns the func that closes it. Spans are expected
// to nest, as they do when they are all opened on the render thread.
func Start(name string) func() {
	rec.mu.Lock()
	if !rec.on {
		rec.mu.Unlock()
		return func() {}
	}
	s := span{name: name, start: int64(time.Since(rec.epoch)), depth: rec.depth}
	rec.depth++
	rec.mu.Unlock()

	return func() {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		s.end = int64(time.Since(rec.epoch))
		rec.depth--
		rec.add(s)
	}
}

func (r *recorder) add(s span) {
	if len(r.spans) == 0 {
		return
	}
	r.spans[r.next] = s
	r.next++
	if r.next == len(r.spans) {
		r.next, r.full = 0, true
	}
}

func (r *recorder) finished() []span {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return append(append([]span(nil), r.spans[r.next:]...), r.spans[:r.next]...)
	}
	return append([]span(nil), r.spans[:r.next]...)
}

// Dump writes the finished spans to path in speedscope's evented format.
func Dump(path string) error {
	spans := rec.finished()
	if len(spans) == 0 {
		return errors.New("profiler: no spans recorded")
	}
	b, err := json.MarshalIndent(speedscope(spans), "", "  ")
	if err != nil {
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return nil
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

// speedscope turns spans into open/close events. Spans are replayed in start
// order against a stack keyed by depth, which keeps the stream nested even
// when timestamps tie or an enclosing span was overwritten.
func speedscope(spans []span) ssFile {
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].depth < spans[j].depth
	})

	frameOf := map[string]int{}
	var frames []ssFrame
	events := make([]ssEvent, 0, 2*len(spans))
	var stack []span

	closeTo := func(depth int) {
		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			events = append(events, ssEvent{Type: "C", At: top.end / 1000, Frame: frameOf[top.name]})
		}
	}

	var last int64
	for _, s := range spans {
		id, ok := frameOf[s.name]
		if !ok {
			id = len(frames)
			frameOf[s.name] = id
			frames = append(frames, ssFrame{Name: s.name})
		}
		closeTo(s.depth)
		events = append(events, ssEvent{Type: "O", At: s.start / 1000, Frame: id})
		stack = append(stack, s)
		last = max(last, s.end)
	}
	closeTo(0)

	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:       "evented",
			Name:       "viewport",
			Unit:       "microseconds",
			StartValue: spans[0].start / 1000,
			EndValue:   last / 1000,
			Events:     events,
		}},
		Exporter: "orbit-profiler",
	}
}
