package scene

import "github.com/go-gl/mathgl/mgl32"

// MeshInfo is a Mesh whose statistics are known up front.
type MeshInfo struct {
	Polys  int
	Verts  int
	Sphere mgl32.Vec4
}

func (m MeshInfo) PolyCount() int             { return m.Polys }
func (m MeshInfo) VertexCount() int           { return m.Verts }
func (m MeshInfo) BoundingSphere() mgl32.Vec4 { return m.Sphere }
