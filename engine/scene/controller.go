package scene

import "github.com/hubastard/orbit/engine/core"

// Bindings maps pointer buttons and keys to camera operations.
type Bindings struct {
	Rotate   core.Button
	Pan      core.Button
	Forward  core.Key
	Backward core.Key
}

func DefaultBindings() Bindings {
	return Bindings{
		Rotate:   core.ButtonLeft,
		Pan:      core.ButtonRight,
		Forward:  core.KeyW,
		Backward: core.KeyS,
	}
}

// Controller: left drag rotates, right drag pans, W/S and the wheel zoom.
type Controller struct {
	Bindings Bindings

	RotateDivisor  float32 // pixels per radian
	KeyZoomStep    float32 // zoom per tick while a zoom key is held
	WheelZoomScale float32 // zoom per wheel unit

	Camera *Camera
}

func NewController(cam *Camera) *Controller {
	return &Controller{
		Bindings:       DefaultBindings(),
		RotateDivisor:  300,
		KeyZoomStep:    0.25,
		WheelZoomScale: 0.1,
		Camera:         cam,
	}
}

// Apply maps one tick of input onto the camera and reports whether the camera changed.
// Inactive input (no focus, pointer outside, reserved modifier) is ignored.
// Operations are not exclusive: holding both buttons rotates and pans in the same tick.
func (cc *Controller) Apply(d core.InputDelta) bool {
	if !d.Active {
		return false
	}
	cam := cc.Camera
	dx, dy := float32(d.DX), float32(d.DY)
	changed := false

	if d.Buttons.Has(cc.Bindings.Rotate) {
		cam.RotateX(dy / cc.RotateDivisor)
		cam.RotateY(dx / cc.RotateDivisor)
		changed = true
	}
	if d.Buttons.Has(cc.Bindings.Pan) {
		cam.Pan(dx, dy)
		changed = true
	}
	if d.Keys.Has(cc.Bindings.Forward) {
		cam.Zoom(cc.KeyZoomStep)
		changed = true
	}
	if d.Keys.Has(cc.Bindings.Backward) {
		cam.Zoom(-cc.KeyZoomStep)
		changed = true
	}

	cam.Zoom(float32(d.DWheel) * cc.WheelZoomScale)
	if d.DWheel != 0 {
		changed = true
	}
	return changed
}
