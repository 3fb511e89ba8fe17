package viewport

import "github.com/hubastard/orbit/engine/profiler"

// Diagnostic text rows, pixels from the top of the surface.
const (
	rowSceneType = 19
	rowPolys     = 35
	rowVerts     = 51
	rowFrame     = 67
)

// RenderFrame composes one frame. withBackground=false leaves out the gradient,
// grid, attachments and diagnostics, which is what a capture wants.
// All state changes made while drawing are undone before it returns.
func (vp *Viewport) RenderFrame(withBackground bool) {
	if !vp.ready {
		return
	}
	end := profiler.Start("viewport.RenderFrame")
	defer end()

	r := vp.renderer
	cfg := vp.settings.Current()

	r.Clear()
	r.PushState()

	if cfg.RenderBackgroundGradient && withBackground {
		r.SetDepthTest(false)
		r.DrawGradient(cfg.BGColor1, cfg.BGColor2)
	}

	r.SetDepthTest(true)
	r.LoadProjection(vp.camera.ViewProjection())

	if cfg.EnableGridDisplay && withBackground {
		r.DrawGrid(cfg.GridSize, cfg.GridLineCount, cfg.GridLineColor)
	}

	if s := vp.binding.Scene(); s != nil {
		s.Render(vp.camera)
	}

	if withBackground {
		vp.attachments.ForEach(func(a Attachment) { a.Render(vp, vp.frame) })
		if cfg.RenderSceneInformation {
			vp.drawSceneInformation()
		}
	}

	r.PopState()

	r.DeleteUnused()
}

func (vp *Viewport) drawSceneInformation() {
	b := vp.lines
	b.Reset()

	var rows [4]float32
	n := 0
	if s := vp.binding.Scene(); s != nil {
		b.S("Scene Type: ").S(s.Kind()).Line()
		rows[n] = rowSceneType
		n++
	}
	b.S("Polys: ").I(vp.binding.PolyCount() / 3).Line()
	b.S("Verts: ").I(vp.binding.VertexCount()).Line()
	b.S("Frame: ").F(vp.frame).Line()
	n += copy(rows[n:], []float32{rowPolys, rowVerts, rowFrame})

	for i, y := range rows[:n] {
		vp.renderer.DrawText(0, y, b.LineView(i))
	}
}
