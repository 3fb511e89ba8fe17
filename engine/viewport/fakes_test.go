package viewport

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/orbit/engine/colors"
	"github.com/hubastard/orbit/engine/core"
	"github.com/hubastard/orbit/engine/scene"
)

// opLog is shared by the fakes so tests can assert the whole frame order.
type opLog struct{ ops []string }

func (l *opLog) add(format string, args ...any) { l.ops = append(l.ops, fmt.Sprintf(format, args...)) }
func (l *opLog) reset()                         { l.ops = nil }

type fakeRenderer struct {
	log        *opLog
	projection mgl32.Mat4
	readErr    error
}

func (r *fakeRenderer) Resize(w, h int)         { r.log.add("resize %dx%d", w, h) }
func (r *fakeRenderer) Clear()                  { r.log.add("clear") }
func (r *fakeRenderer) PushState()              { r.log.add("push") }
func (r *fakeRenderer) PopState()               { r.log.add("pop") }
func (r *fakeRenderer) SetDepthTest(on bool)    { r.log.add("depth %v", on) }
func (r *fakeRenderer) DeleteUnused()           { r.log.add("cleanup") }
func (r *fakeRenderer) EnableSeamlessCubemaps() { r.log.add("cubemaps") }
func (r *fakeRenderer) DrawText(x, y float32, s string) {
	r.log.add("text %v,%v %s", x, y, strings.Clone(s))
}

func (r *fakeRenderer) DrawGradient(bottom, top colors.Color) {
	r.log.add("gradient %s %s", bottom.Hex(), top.Hex())
}

func (r *fakeRenderer) LoadProjection(m mgl32.Mat4) {
	r.projection = m
	r.log.add("projection")
}

func (r *fakeRenderer) DrawGrid(spacing float32, lines int, c colors.Color) {
	r.log.add("grid %v %d %s", spacing, lines, c.Hex())
}

func (r *fakeRenderer) ReadPixels(w, h int) (*image.NRGBA, error) {
	r.log.add("read %dx%d", w, h)
	if r.readErr != nil {
		return nil, r.readErr
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 80, B: 120, A: 255})
		}
	}
	return img, nil
}

// fakeSampler replays queued samples; an empty queue reports no device.
type fakeSampler struct{ queue []core.InputState }

func (s *fakeSampler) push(st core.InputState) { s.queue = append(s.queue, st) }

func (s *fakeSampler) Sample() (core.InputState, bool) {
	if len(s.queue) == 0 {
		return core.InputState{}, false
	}
	st := s.queue[0]
	s.queue = s.queue[1:]
	return st, true
}

type fakeScene struct {
	log    *opLog
	meshes []scene.Mesh
}

func (s *fakeScene) Meshes() []scene.Mesh { return s.meshes }
func (s *fakeScene) Kind() string         { return "ModelScene" }
func (s *fakeScene) Render(cam *scene.Camera) {
	s.log.add("scene")
}

type fakeAttachment struct {
	name string
	log  *opLog
}

func (a *fakeAttachment) Step(*Viewport) { a.log.add("step %s", a.name) }
func (a *fakeAttachment) Render(_ *Viewport, frame float32) {
	a.log.add("render %s %v", a.name, frame)
}

var errDisk = errors.New("disk on fire")
