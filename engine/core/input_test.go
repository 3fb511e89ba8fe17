package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputTrackerDeltas(t *testing.T) {
	in := NewInputTracker()

	d := in.Advance(InputState{X: 10, Y: 20, Wheel: 3, Focused: true}, 100, 100)
	assert.Zero(t, d.DX)
	assert.Zero(t, d.DY)
	assert.Zero(t, d.DWheel, "first sample only seeds the baseline")

	d = in.Advance(InputState{X: 15, Y: 17, Wheel: 5, Focused: true}, 100, 100)
	assert.Equal(t, 5.0, d.DX)
	assert.Equal(t, -3.0, d.DY)
	assert.Equal(t, 2.0, d.DWheel)
	assert.True(t, d.Active)

	x, y := in.Mouse()
	assert.Equal(t, 15.0, x)
	assert.Equal(t, 17.0, y)
}

func TestInputTrackerGating(t *testing.T) {
	cases := []struct {
		name  string
		state InputState
		want  bool
	}{
		{"focused inside", InputState{X: 50, Y: 50, Focused: true}, true},
		{"unfocused", InputState{X: 50, Y: 50}, false},
		{"outside right", InputState{X: 100, Y: 50, Focused: true}, false},
		{"outside above", InputState{X: 50, Y: -1, Focused: true}, false},
		{"reserved modifier", InputState{X: 50, Y: 50, Focused: true, Keys: Keys(KeyLeftAlt)}, false},
		{"other key", InputState{X: 50, Y: 50, Focused: true, Keys: Keys(KeyW)}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := NewInputTracker()
			assert.Equal(t, c.want, in.Advance(c.state, 100, 100).Active)
		})
	}
}

func TestInputTrackerBaselineMovesWhileGated(t *testing.T) {
	in := NewInputTracker()
	in.Advance(InputState{X: 0, Y: 0, Focused: true}, 100, 100)
	in.Advance(InputState{X: 80, Y: 80}, 100, 100) // unfocused drag

	d := in.Advance(InputState{X: 81, Y: 80, Focused: true}, 100, 100)
	assert.Equal(t, 1.0, d.DX)
	assert.True(t, d.Active)
}

func TestKeySet(t *testing.T) {
	s := Keys(KeyW, KeyLeftAlt)
	assert.True(t, s.Has(KeyW))
	assert.True(t, s.Has(KeyLeftAlt))
	assert.False(t, s.Has(KeyS))
	assert.False(t, s.Has(KeyUnknown))
	assert.False(t, s.Without(KeyW).Has(KeyW))

	assert.True(t, (ButtonLeft | ButtonRight).Has(ButtonRight))
	assert.False(t, ButtonLeft.Has(ButtonRight))
	assert.False(t, ButtonLeft.Has(0))
}
