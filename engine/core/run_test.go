package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	frames, swaps int
	cb            func(Event)
}

func (w *fakeWindow) PollEvents() {
	if w.cb != nil {
		w.cb(EventResize{W: 10, H: 10})
	}
}
func (w *fakeWindow) SwapBuffers()                { w.swaps++ }
func (w *fakeWindow) ShouldClose() bool           { return w.swaps >= w.frames }
func (w *fakeWindow) FramebufferSize() (int, int) { return 10, 10 }
func (w *fakeWindow) SetTitle(string)             {}
func (w *fakeWindow) SetEventCallback(cb func(Event)) {
	w.cb = cb
}

type countTicker struct{ n int }

func (c *countTicker) Tick() { c.n++ }

func TestRunTicksOncePerFrame(t *testing.T) {
	win := &fakeWindow{frames: 3}
	tk := &countTicker{}
	var events int
	require.NoError(t, Run(win, tk, func(Event) { events++ }))

	assert.Equal(t, 3, tk.n)
	assert.Equal(t, 3, win.swaps)
	assert.Equal(t, 3, events)
}
