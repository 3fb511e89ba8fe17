package viewport

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/orbit/engine/core"
	"github.com/hubastard/orbit/engine/profiler"
	"github.com/hubastard/orbit/engine/scene"
	"github.com/hubastard/orbit/engine/scratch"
	"github.com/hubastard/orbit/engine/settings"
)

var ErrNotReady = errors.New("viewport: surface not loaded")

// SettingsSource supplies the user options; it is read on every frame.
type SettingsSource interface {
	Current() settings.Settings
}

// Viewport owns the camera, the input-to-camera mapping and frame composition
// for one GL surface. All methods must be called from the thread that owns the
// GL context.
type Viewport struct {
	camera      *scene.Camera
	controller  *scene.Controller
	binding     scene.Binding
	attachments Attachments

	renderer core.Renderer
	sampler  core.InputSampler
	input    *core.InputTracker
	settings SettingsSource
	lines    *scratch.Buffer

	// ShaderSetup runs once when the surface loads.
	ShaderSetup func() error
	// RenderOnlyWhenDirty skips the render pass on ticks that changed nothing.
	// Off by default: skipping frames flickers on some drivers.
	RenderOnlyWhenDirty bool

	frame         float32
	dirty         bool
	ready         bool
	width, height int
}

// New builds an unloaded viewport. sampler may be nil for a viewport without input.
func New(r core.Renderer, sampler core.InputSampler, src SettingsSource) *Viewport {
	if src == nil {
		src = settings.NewStore(settings.Default())
	}
	cam := scene.NewCamera()
	return &Viewport{
		camera:     cam,
		controller: scene.NewController(cam),
		renderer:   r,
		sampler:    sampler,
		input:      core.NewInputTracker(),
		settings:   src,
		lines:      scratch.New(256),
		dirty:      true,
	}
}

// Load is the surface load event: it moves the viewport to the ready state and
// syncs the camera with the surface size. Loading twice is a no-op.
func (vp *Viewport) Load(w, h int) error {
	if vp.ready {
		return nil
	}
	vp.renderer.EnableSeamlessCubemaps()
	if vp.ShaderSetup != nil {
		if err := vp.ShaderSetup(); err != nil {
			return fmt.Errorf("shader setup: %w", err)
		}
	}
	vp.ready = true
	vp.syncSize(w, h)
	return nil
}

// Resize resyncs the camera with the surface. Ignored until Load.
func (vp *Viewport) Resize(w, h int) {
	if !vp.ready {
		return
	}
	vp.syncSize(w, h)
}

func (vp *Viewport) syncSize(w, h int) {
	vp.width, vp.height = w, h
	vp.camera.SetViewportPixels(w, h)
	vp.renderer.Resize(w, h)
	vp.dirty = true
}

// Tick runs one frame: input, camera, attachment steps, render.
func (vp *Viewport) Tick() {
	if !vp.ready {
		return
	}
	end := profiler.Start("viewport.Tick")
	defer end()

	vp.updateCamera()
	vp.attachments.ForEach(func(a Attachment) { a.Step(vp) })

	if vp.dirty || !vp.RenderOnlyWhenDirty {
		vp.RenderFrame(true)
	}
	vp.dirty = false
	vp.frame++
}

func (vp *Viewport) updateCamera() {
	if vp.sampler == nil {
		return
	}
	s, ok := vp.sampler.Sample()
	if !ok {
		return
	}
	d := vp.input.Advance(s, vp.width, vp.height)
	if vp.controller.Apply(d) {
		vp.dirty = true
	}
}

// Bind makes s the rendered scene (nil unbinds). Statistics are recomputed and
// the camera is reframed when the scene has a positive vertical extent.
func (vp *Viewport) Bind(s scene.Scene) {
	vp.binding.Bind(s, vp.camera)
	vp.dirty = true
}

func (vp *Viewport) Scene() scene.Scene { return vp.binding.Scene() }

// Stats returns the bound scene's summed poly and vertex counts.
func (vp *Viewport) Stats() (polys, verts int) {
	return vp.binding.PolyCount(), vp.binding.VertexCount()
}

func (vp *Viewport) Camera() *scene.Camera         { return vp.camera }
func (vp *Viewport) Controller() *scene.Controller { return vp.controller }
func (vp *Viewport) Attachments() *Attachments     { return &vp.attachments }
func (vp *Viewport) Frame() float32                { return vp.frame }
func (vp *Viewport) Dirty() bool                   { return vp.dirty }
func (vp *Viewport) Ready() bool                   { return vp.ready }
func (vp *Viewport) Size() (int, int)              { return vp.width, vp.height }

// SetFrame overrides the frame counter, e.g. when the host scrubs an animation.
func (vp *Viewport) SetFrame(f float32) {
	vp.frame = f
	vp.dirty = true
}

// MousePosition is the pointer position from the last successful sample.
func (vp *Viewport) MousePosition() mgl32.Vec2 {
	x, y := vp.input.Mouse()
	return mgl32.Vec2{float32(x), float32(y)}
}
