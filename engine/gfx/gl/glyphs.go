package glbackend

import (
	"image"

	"github.com/hubastard/orbit/engine/colors"
	"github.com/hubastard/orbit/engine/core"
	"github.com/hubastard/orbit/engine/text"
)

type glyphKey struct {
	ch  rune
	col colors.Color
}

type glyph struct {
	tex     uint32 // 0 for glyphs with nothing to draw
	w, h    int
	advance int
}

// glyphCache uploads each rune once per color. Text that changes every frame,
// like a frame counter, only ever draws from textures that already exist.
type glyphCache struct {
	font    *text.Rasterizer
	objects *Objects
	upload  func(*image.RGBA) uint32
	glyphs  map[glyphKey]*glyph
}

func newGlyphCache(font *text.Rasterizer, objects *Objects, upload func(*image.RGBA) uint32) *glyphCache {
	return &glyphCache{font: font, objects: objects, upload: upload, glyphs: map[glyphKey]*glyph{}}
}

func (c *glyphCache) get(ch rune, col colors.Color) *glyph {
	k := glyphKey{ch, col}
	if g, ok := c.glyphs[k]; ok {
		return g
	}
	img, adv := c.font.Glyph(ch, col)
	g := &glyph{advance: adv}
	if img != nil {
		g.tex = c.upload(img)
		g.w, g.h = img.Bounds().Dx(), img.Bounds().Dy()
		c.objects.Retain(ObjectTexture, g.tex)
	}
	c.glyphs[k] = g
	return g
}

// release hands every glyph texture back to the registry.
func (c *glyphCache) release() {
	for k, g := range c.glyphs {
		c.objects.Release(ObjectTexture, g.tex)
		delete(c.glyphs, k)
	}
}

// loadFont picks the TTF face named by cfg, or the built-in bitmap face.
func loadFont(cfg core.Config) (*text.Rasterizer, error) {
	if cfg.FontPath == "" {
		return text.NewBasic(), nil
	}
	size := cfg.FontSize
	if size <= 0 {
		size = 14
	}
	return text.LoadTTF(cfg.FontPath, size)
}
