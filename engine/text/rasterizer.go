package text

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hubastard/orbit/engine/colors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Rasterizer draws single lines of text into RGBA images for upload as textures.
type Rasterizer struct {
	face      font.Face
	ascent    int
	height    int
	closeFace func()
}

// NewBasic uses the built-in 7x13 bitmap face; it needs no font files.
func NewBasic() *Rasterizer {
	return newRasterizer(basicfont.Face7x13, nil)
}

// LoadTTF parses a TrueType/OpenType font file at sizePx pixels.
func LoadTTF(path string, sizePx float32) (*Rasterizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return newRasterizer(face, func() { _ = face.Close() }), nil
}

func newRasterizer(face font.Face, closeFace func()) *Rasterizer {
	m := face.Metrics()
	return &Rasterizer{
		face:      face,
		ascent:    m.Ascent.Ceil(),
		height:    (m.Ascent + m.Descent).Ceil(),
		closeFace: closeFace,
	}
}

func (r *Rasterizer) Close() {
	if r != nil && r.closeFace != nil {
		r.closeFace()
		r.closeFace = nil
	}
}

// LineHeight in pixels.
func (r *Rasterizer) LineHeight() int { return r.height }

// Glyph draws ch in col on a transparent cell as wide as its advance and one
// line high, baseline at the ascent. Runes the face lacks draw as '?'.
// The image is nil for zero-width glyphs; the advance is still reported.
func (r *Rasterizer) Glyph(ch rune, col colors.Color) (*image.RGBA, int) {
	adv, ok := r.face.GlyphAdvance(ch)
	if !ok {
		ch = '?'
		adv, _ = r.face.GlyphAdvance(ch)
	}
	w := adv.Ceil()
	if w <= 0 || r.height <= 0 {
		return nil, w
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, r.height))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(toNRGBA(col)),
		Face: r.face,
		Dot:  fixed.P(0, r.ascent),
	}
	d.DrawString(string(ch))
	return dst, w
}

func toNRGBA(c colors.Color) color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

func to8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
