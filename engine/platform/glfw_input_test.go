package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFramebuffer(t *testing.T) {
	cases := []struct {
		name         string
		x, y         float64
		winW, winH   int
		fbW, fbH     int
		wantX, wantY float64
	}{
		{"same size", 100, 50, 1280, 720, 1280, 720, 100, 50},
		{"retina", 100, 50, 1280, 720, 2560, 1440, 200, 100},
		{"fractional", 10, 10, 1000, 500, 1500, 750, 15, 15},
		{"minimized", 10, 10, 0, 0, 0, 0, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := toFramebuffer(tc.x, tc.y, tc.winW, tc.winH, tc.fbW, tc.fbH)
			assert.InDelta(t, tc.wantX, x, 1e-9)
			assert.InDelta(t, tc.wantY, y, 1e-9)
		})
	}
}

func TestToFramebufferKeepsOutsidePointsOutside(t *testing.T) {
	// 1300 window pixels is past the right edge of a 1280 wide window.
	x, _ := toFramebuffer(1300, 0, 1280, 720, 2560, 1440)
	assert.Greater(t, x, 2560.0)
}
