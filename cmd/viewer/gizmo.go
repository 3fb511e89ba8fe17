package main

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/orbit/engine/colors"
	"github.com/hubastard/orbit/engine/viewport"
)

// axesGizmo draws the world axes at the origin: X red, Y green, Z blue.
// The negative half of each axis is drawn faded.
type axesGizmo struct {
	Length float32
}

var axisColors = [3]colors.Color{
	colors.Lerp(colors.Red, colors.White, 0.2),
	colors.Lerp(colors.Green, colors.White, 0.2),
	colors.Lerp(colors.Blue, colors.White, 0.3),
}

// axisSegments returns the line endpoints and colors for the gizmo, two segments per axis.
func axisSegments(length float32) (ends [12]mgl32.Vec3, cols [6]colors.Color) {
	for i, c := range axisColors {
		var dir mgl32.Vec3
		dir[i] = length
		ends[4*i+1] = dir
		ends[4*i+3] = dir.Mul(-1)
		cols[2*i] = c
		cols[2*i+1] = c.WithAlpha(0.35)
	}
	return ends, cols
}

func (g *axesGizmo) Step(*viewport.Viewport) {}

func (g *axesGizmo) Render(_ *viewport.Viewport, _ float32) {
	ends, cols := axisSegments(g.Length)
	gl.UseProgram(0)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.LineWidth(2)
	gl.Begin(gl.LINES)
	for i, c := range cols {
		gl.Color4f(c.R(), c.G(), c.B(), c.A())
		a, b := ends[2*i], ends[2*i+1]
		gl.Vertex3f(a[0], a[1], a[2])
		gl.Vertex3f(b[0], b[1], b[2])
	}
	gl.End()
	gl.LineWidth(1)
}

type titler interface {
	SetTitle(title string)
}

// titleStats mirrors the camera position into the window title every few ticks.
type titleStats struct {
	win   titler
	every int
	ticks int
}

func (t *titleStats) Step(vp *viewport.Viewport) {
	t.ticks++
	if t.every > 1 && t.ticks%t.every != 1 {
		return
	}
	p := vp.Camera().Position
	w, h := vp.Size()
	t.win.SetTitle(fmt.Sprintf("Orbit | %dx%d | cam (%.2f, %.2f, %.2f) | frame %.0f", w, h, p[0], p[1], p[2], vp.Frame()))
}

func (t *titleStats) Render(*viewport.Viewport, float32) {}
