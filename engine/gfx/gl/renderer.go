package glbackend

import (
	"fmt"
	"image"
	"log"

	"github.com/disintegration/imaging"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/orbit/engine/colors"
	"github.com/hubastard/orbit/engine/core"
	"github.com/hubastard/orbit/engine/text"
)

// GL_TEXTURE_CUBE_MAP_SEAMLESS is core in 3.2 and missing from the 2.1 bindings.
const textureCubeMapSeamless = 0x884F

// RendererGL implements core.Renderer on the OpenGL 2.1 compatibility profile,
// which keeps the attribute stack and matrix stacks the frame relies on.
type RendererGL struct {
	win     core.Window
	objects *Objects
	font    *text.Rasterizer
	glyphs  *glyphCache

	TextColor colors.Color
	width     int
	height    int
}

// NewRendererGL must be called with the window's context current.
func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))

	font, err := loadFont(cfg)
	if err != nil {
		return nil, err
	}
	r := &RendererGL{
		win:       win,
		objects:   newObjects(deleteObject),
		font:      font,
		TextColor: colors.White,
	}
	r.glyphs = newGlyphCache(font, r.objects, uploadTexture)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	r.Resize(win.FramebufferSize())
	return r, nil
}

// Objects exposes the deferred-deletion registry for collaborators that allocate GL objects.
func (r *RendererGL) Objects() *Objects { return r.objects }

func (r *RendererGL) Shutdown() {
	r.glyphs.release()
	r.objects.DeleteUnused()
	r.font.Close()
}

func (r *RendererGL) Resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *RendererGL) PushState() {
	gl.PushAttrib(gl.ALL_ATTRIB_BITS)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
}

func (r *RendererGL) PopState() {
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
	gl.PopAttrib()
}

func (r *RendererGL) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (r *RendererGL) EnableSeamlessCubemaps() {
	gl.Enable(textureCubeMapSeamless)
}

func (r *RendererGL) DrawGradient(bottom, top colors.Color) {
	gl.UseProgram(0)
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Begin(gl.QUADS)
	gl.Color3f(bottom[0], bottom[1], bottom[2])
	gl.Vertex2f(-1, -1)
	gl.Vertex2f(1, -1)
	gl.Color3f(top[0], top[1], top[2])
	gl.Vertex2f(1, 1)
	gl.Vertex2f(-1, 1)
	gl.End()
	gl.PopMatrix()
}

func (r *RendererGL) LoadProjection(m mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&m[0])
	gl.MatrixMode(gl.MODELVIEW)
}

// DrawGrid draws lines x lines on the XZ plane through the origin.
func (r *RendererGL) DrawGrid(spacing float32, lines int, color colors.Color) {
	if lines <= 0 || spacing <= 0 {
		return
	}
	gl.UseProgram(0)
	half := spacing * float32(lines-1) / 2
	gl.Color4f(color[0], color[1], color[2], color[3])
	gl.LineWidth(1)
	gl.Begin(gl.LINES)
	for i := 0; i < lines; i++ {
		p := -half + spacing*float32(i)
		gl.Vertex3f(p, 0, -half)
		gl.Vertex3f(p, 0, half)
		gl.Vertex3f(-half, 0, p)
		gl.Vertex3f(half, 0, p)
	}
	gl.End()
}

// DrawText draws s glyph by glyph in window pixels from the glyph cache.
func (r *RendererGL) DrawText(x, y float32, s string) {
	if s == "" || r.width == 0 || r.height == 0 {
		return
	}

	gl.UseProgram(0)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.TEXTURE_2D)

	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(r.width), float64(r.height), 0, -1, 1) // origin top-left
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Color4f(1, 1, 1, 1)

	pen := x
	for _, ch := range s {
		g := r.glyphs.get(ch, r.TextColor)
		if g.tex != 0 {
			x1, y1 := pen+float32(g.w), y+float32(g.h)
			gl.BindTexture(gl.TEXTURE_2D, g.tex)
			gl.Begin(gl.QUADS)
			gl.TexCoord2f(0, 0)
			gl.Vertex2f(pen, y)
			gl.TexCoord2f(1, 0)
			gl.Vertex2f(x1, y)
			gl.TexCoord2f(1, 1)
			gl.Vertex2f(x1, y1)
			gl.TexCoord2f(0, 1)
			gl.Vertex2f(pen, y1)
			gl.End()
		}
		pen += float32(g.advance)
	}

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.TEXTURE_2D)
}

// ReadPixels reads the default framebuffer; GL rows run bottom-up so the result is flipped.
func (r *RendererGL) ReadPixels(w, h int) (*image.NRGBA, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("read pixels: invalid size %dx%d", w, h)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	err := checkedCall(gl.GetError, func() {
		gl.ReadBuffer(gl.BACK)
		gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
		gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	})
	if err != nil {
		return nil, fmt.Errorf("read pixels: %w", err)
	}
	return imaging.FlipV(img), nil
}

func (r *RendererGL) DeleteUnused() { r.objects.DeleteUnused() }

func uploadTexture(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id
}

func deleteObject(kind ObjectKind, id uint32) {
	switch kind {
	case ObjectTexture:
		gl.DeleteTextures(1, &id)
	case ObjectBuffer:
		gl.DeleteBuffers(1, &id)
	case ObjectProgram:
		gl.DeleteProgram(id)
	}
}
