package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/orbit/engine/core"
)

var polledKeys = [...]struct {
	glfw glfw.Key
	key  core.Key
}{
	{glfw.KeyW, core.KeyW},
	{glfw.KeyA, core.KeyA},
	{glfw.KeyS, core.KeyS},
	{glfw.KeyD, core.KeyD},
	{glfw.KeyLeftAlt, core.KeyLeftAlt},
}

var polledButtons = [...]struct {
	glfw   glfw.MouseButton
	button core.Button
}{
	{glfw.MouseButtonLeft, core.ButtonLeft},
	{glfw.MouseButtonRight, core.ButtonRight},
	{glfw.MouseButtonMiddle, core.ButtonMiddle},
}

// Sample implements core.InputSampler by polling the window's current device state.
// Cursor coordinates are relative to the client area and in framebuffer pixels,
// the same unit the viewport is sized in.
func (g *GLFWWindow) Sample() (core.InputState, bool) {
	if g == nil || g.w == nil || g.w.ShouldClose() {
		return core.InputState{}, false
	}
	winW, winH := g.w.GetSize()
	fbW, fbH := g.w.GetFramebufferSize()
	x, y := g.w.GetCursorPos()
	x, y = toFramebuffer(x, y, winW, winH, fbW, fbH)
	s := core.InputState{
		X:       x,
		Y:       y,
		Wheel:   g.wheel,
		Focused: g.w.GetAttrib(glfw.Focused) == glfw.True,
	}
	for _, b := range polledButtons {
		if g.w.GetMouseButton(b.glfw) == glfw.Press {
			s.Buttons |= b.button
		}
	}
	for _, k := range polledKeys {
		if g.w.GetKey(k.glfw) == glfw.Press {
			s.Keys = s.Keys.With(k.key)
		}
	}
	return s, true
}

// toFramebuffer converts a cursor position from window coordinates to
// framebuffer pixels. They differ on HiDPI displays.
func toFramebuffer(x, y float64, winW, winH, fbW, fbH int) (float64, float64) {
	if winW > 0 && fbW > 0 {
		x *= float64(fbW) / float64(winW)
	}
	if winH > 0 && fbH > 0 {
		y *= float64(fbH) / float64(winH)
	}
	return x, y
}
