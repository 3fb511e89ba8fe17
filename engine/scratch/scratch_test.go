package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	b := New(0)
	b.S("Polys: ").I(10).Line()
	b.S("Frame: ").F(12).Line()
	b.S("Frame: ").F(2.5).Line()

	assert.Equal(t, 3, b.LineCount())
	assert.Equal(t, "Polys: 10", b.LineView(0))
	assert.Equal(t, "Frame: 12", b.LineView(1))
	assert.Equal(t, "Frame: 2.5", b.LineView(2))

	b.Reset()
	assert.Zero(t, b.LineCount())
	assert.Zero(t, b.Len())
	assert.GreaterOrEqual(t, b.Cap(), 1024)

	b.Line()
	assert.Equal(t, "", b.LineView(0))
}
