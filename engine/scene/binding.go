package scene

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is the per-mesh metadata the viewport aggregates.
type Mesh interface {
	PolyCount() int
	VertexCount() int
	// BoundingSphere is center xyz and radius in w.
	BoundingSphere() mgl32.Vec4
}

// Scene is a renderable owned by the host; the viewport only borrows it.
type Scene interface {
	Meshes() []Mesh
	Render(cam *Camera)
	// Kind names the scene type for diagnostics.
	Kind() string
}

// Binding holds the active scene and the statistics derived from it.
type Binding struct {
	scene       Scene
	polyCount   int
	vertexCount int
	extent      float32
}

// Bind replaces the active scene, recomputes its statistics and, when the
// scene has a positive vertical extent, reframes cam around it.
// It reports whether cam was reframed. A nil scene, including a nil pointer
// of a concrete scene type, clears everything.
func (b *Binding) Bind(s Scene, cam *Camera) bool {
	if isNilScene(s) {
		s = nil
	}
	b.scene = s
	b.polyCount, b.vertexCount, b.extent = 0, 0, 0
	if s == nil {
		return false
	}

	for _, m := range s.Meshes() {
		b.polyCount += m.PolyCount()
		b.vertexCount += m.VertexCount()
		if y := m.BoundingSphere().Y(); y > b.extent {
			b.extent = y
		}
	}

	if b.extent <= 0 || cam == nil {
		return false
	}
	Frame(cam, b.extent)
	return true
}

// Frame resets cam's rotation and places it on the view axis to fit extent.
func Frame(cam *Camera, extent float32) {
	cam.RotationX, cam.RotationY = 0, 0
	cam.Position = mgl32.Vec3{0, extent / 2, -extent * 3}
}

func (b *Binding) Scene() Scene     { return b.scene }
func (b *Binding) PolyCount() int   { return b.polyCount }
func (b *Binding) VertexCount() int { return b.vertexCount }
func (b *Binding) Extent() float32  { return b.extent }
func (b *Binding) Bound() bool      { return b.scene != nil }

func isNilScene(s Scene) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
