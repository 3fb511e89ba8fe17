package core

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/orbit/engine/colors"
)

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer is the set of GL operations a viewport frame is composed of.
// Implementations run on the thread that owns the GL context.
type Renderer interface {
	Resize(w, h int)
	Clear()

	// PushState saves all graphics state; PopState restores it.
	PushState()
	PopState()

	SetDepthTest(enabled bool)
	// DrawGradient fills the device-space quad (-1,-1)-(1,1), bottom to top.
	DrawGradient(bottom, top colors.Color)
	LoadProjection(m mgl32.Mat4)
	DrawGrid(spacing float32, lines int, color colors.Color)
	// DrawText draws s with its top-left corner at (x, y) pixels from the top-left of the surface.
	// s may alias a per-frame buffer and must not be retained after the call.
	DrawText(x, y float32, s string)

	// ReadPixels returns the default framebuffer contents, top row first.
	ReadPixels(w, h int) (*image.NRGBA, error)
	// DeleteUnused releases GPU objects nobody references any more.
	DeleteUnused()
	EnableSeamlessCubemaps()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

type EventFocus struct{ Focused bool }

func (EventFocus) isEvent() {}

// Key enum (subset the viewport and the viewer use).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyLeftAlt
	KeyF12
	keyCount
)

// KeySet is the set of keys held at sampling time.
type KeySet uint64

func Keys(ks ...Key) KeySet {
	var s KeySet
	for _, k := range ks {
		s = s.With(k)
	}
	return s
}

func (s KeySet) Has(k Key) bool       { return k > KeyUnknown && k < keyCount && s&(1<<uint(k)) != 0 }
func (s KeySet) With(k Key) KeySet    { return s | 1<<uint(k) }
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << uint(k)) }

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

// Button is a set of pointer buttons.
type Button int

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonMiddle
)

func (b Button) Has(o Button) bool { return o != 0 && b&o == o }

// Config for the host window.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color

	// FontPath selects a TTF/OTF face for on-screen text; empty uses the built-in bitmap face.
	FontPath string
	FontSize float32 // pixels
}
