package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera with a free eye position and yaw/pitch orientation.
// With zero rotation it looks down +Z with +Y up.
type Camera struct {
	RotationX float32 // pitch, radians, unbounded
	RotationY float32 // yaw, radians, unbounded
	Position  mgl32.Vec3

	FOV           float32 // vertical, radians
	NearClipPlane float32
	FarClipPlane  float32

	RenderWidth  int
	RenderHeight int
}

func NewCamera() *Camera {
	return &Camera{
		FOV:           mgl32.DegToRad(30),
		NearClipPlane: 1,
		FarClipPlane:  50000,
	}
}

func (c *Camera) RotateX(dRad float32) { c.RotationX += dRad }
func (c *Camera) RotateY(dRad float32) { c.RotationY += dRad }

// SetViewportPixels syncs the render size with the surface.
func (c *Camera) SetViewportPixels(w, h int) {
	c.RenderWidth, c.RenderHeight = w, h
}

// Degenerate reports whether the render size cannot produce a projection.
func (c *Camera) Degenerate() bool { return c.RenderWidth <= 0 || c.RenderHeight <= 0 }

func (c *Camera) orientation() mgl32.Mat3 {
	return mgl32.Rotate3DY(c.RotationY).Mul3(mgl32.Rotate3DX(c.RotationX))
}

func (c *Camera) Right() mgl32.Vec3   { return c.orientation().Mul3x1(mgl32.Vec3{-1, 0, 0}) }
func (c *Camera) Up() mgl32.Vec3      { return c.orientation().Mul3x1(mgl32.Vec3{0, 1, 0}) }
func (c *Camera) Forward() mgl32.Vec3 { return c.orientation().Mul3x1(mgl32.Vec3{0, 0, 1}) }

// distance is the eye's distance from the origin, floored so scales never vanish near it.
func (c *Camera) distance() float32 {
	if l := c.Position.Len(); l > 1 {
		return l
	}
	return 1
}

// PanScale is the world size of one pixel at the eye's distance from the origin.
// Zero when the render size is degenerate.
func (c *Camera) PanScale() float32 {
	if c.Degenerate() {
		return 0
	}
	halfH := float32(math.Tan(float64(c.FOV) * 0.5))
	return 2 * c.distance() * halfH / float32(c.RenderHeight)
}

// ZoomScale is the world distance moved by Zoom(1).
func (c *Camera) ZoomScale() float32 { return c.distance() * 0.1 }

// Pan moves the eye in its local X/Y plane by a pixel offset so the scene follows the pointer.
func (c *Camera) Pan(dx, dy float32) {
	s := c.PanScale()
	if s == 0 {
		return
	}
	offset := c.Right().Mul(-dx * s).Add(c.Up().Mul(dy * s))
	c.Position = c.Position.Add(offset)
}

// Zoom moves the eye along its view direction; positive moves forward.
func (c *Camera) Zoom(delta float32) {
	if delta == 0 {
		return
	}
	c.Position = c.Position.Add(c.Forward().Mul(delta * c.ZoomScale()))
}

// View is the world-to-eye transform.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward()), c.Up())
}

// Projection is the perspective transform, or identity when the render size is degenerate.
func (c *Camera) Projection() mgl32.Mat4 {
	if c.Degenerate() {
		return mgl32.Ident4()
	}
	aspect := float32(c.RenderWidth) / float32(c.RenderHeight)
	return mgl32.Perspective(c.FOV, aspect, c.NearClipPlane, c.FarClipPlane)
}

// ViewProjection is computed from the current state on every call.
// A degenerate render size yields identity rather than NaNs.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	if c.Degenerate() {
		return mgl32.Ident4()
	}
	return c.Projection().Mul4(c.View())
}
