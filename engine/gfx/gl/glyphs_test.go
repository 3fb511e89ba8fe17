package glbackend

import (
	"fmt"
	"image"
	"testing"

	"github.com/hubastard/orbit/engine/colors"
	"github.com/hubastard/orbit/engine/core"
	"github.com/hubastard/orbit/engine/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGlyphCache() (*glyphCache, *Objects, *int) {
	uploads := 0
	objs := newObjects(func(ObjectKind, uint32) {})
	c := newGlyphCache(text.NewBasic(), objs, func(*image.RGBA) uint32 {
		uploads++
		return uint32(uploads)
	})
	return c, objs, &uploads
}

func TestGlyphCacheUploadsEachRuneOnce(t *testing.T) {
	c, objs, uploads := newTestGlyphCache()

	for frame := 0; frame < 500; frame++ {
		for _, ch := range fmt.Sprintf("Frame: %d", frame) {
			c.get(ch, colors.White)
		}
	}
	// "Frame: " has 6 distinct runes plus the space, then ten digits.
	assert.Equal(t, 17, *uploads)
	assert.Equal(t, 17, objs.Live())

	g := c.get('1', colors.White)
	assert.Equal(t, 7, g.advance)
	assert.Equal(t, 13, g.h)

	c.get('1', colors.Red)
	assert.Equal(t, 18, *uploads, "a new color is a new texture")
}

func TestGlyphCacheRelease(t *testing.T) {
	c, objs, _ := newTestGlyphCache()
	c.get('a', colors.White)
	c.get('b', colors.White)

	c.release()
	assert.Equal(t, 2, objs.DeleteUnused())
	assert.Zero(t, objs.Live())
}

func TestLoadFont(t *testing.T) {
	f, err := loadFont(core.Config{})
	require.NoError(t, err)
	assert.Equal(t, 13, f.LineHeight(), "built-in bitmap face")

	_, err = loadFont(core.Config{FontPath: "missing.ttf", FontSize: 18})
	assert.Error(t, err)
}
