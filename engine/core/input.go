package core

// InputState is one poll of the pointer, wheel and keyboard.
// Pointer coordinates are pixels relative to the client area's top-left corner.
type InputState struct {
	X, Y    float64
	Wheel   float64 // cumulative wheel position
	Buttons Button
	Keys    KeySet
	Focused bool
}

// InputSampler polls device state once per tick.
// ok is false when the device state is not available; the tick then leaves the camera alone.
type InputSampler interface {
	Sample() (state InputState, ok bool)
}

// InputDelta is what changed since the previous sample.
type InputDelta struct {
	DX, DY  float64
	DWheel  float64
	Buttons Button
	Keys    KeySet
	// Active reports whether the camera may react to this sample.
	Active bool
}

// InputTracker keeps the previous pointer and wheel values and computes per-tick deltas.
type InputTracker struct {
	// Reserved is held by a higher-level tool (selection); while down the camera ignores input.
	Reserved Key

	mouseX, mouseY float64
	wheel          float64
	seeded         bool
}

func NewInputTracker() *InputTracker { return &InputTracker{Reserved: KeyLeftAlt} }

// Advance consumes a new sample for a client area of w x h pixels.
// The baseline always moves to the new sample so a change in gating never produces a delta spike.
func (in *InputTracker) Advance(s InputState, w, h int) InputDelta {
	if !in.seeded {
		in.mouseX, in.mouseY, in.wheel = s.X, s.Y, s.Wheel
		in.seeded = true
	}
	d := InputDelta{
		DX:      s.X - in.mouseX,
		DY:      s.Y - in.mouseY,
		DWheel:  s.Wheel - in.wheel,
		Buttons: s.Buttons,
		Keys:    s.Keys,
		Active:  s.Focused && contains(w, h, s.X, s.Y) && !s.Keys.Has(in.Reserved),
	}
	in.mouseX, in.mouseY, in.wheel = s.X, s.Y, s.Wheel
	return d
}

func (in *InputTracker) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

func contains(w, h int, x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(w) && y < float64(h)
}
