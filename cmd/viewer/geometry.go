package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/orbit/engine/colors"
	"github.com/hubastard/orbit/engine/scene"
)

// Interleaved position and normal, 3 floats each.
const vertexStride = 6

type cube struct {
	Offset mgl32.Vec3
	Color  colors.Color
}

// Unit cube as 12 triangles. Faces are listed as (normal, u, v) with the
// corners spanned by normal/2 +- u/2 +- v/2.
func cubeVertices() []float32 {
	faces := [6][3]mgl32.Vec3{
		{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
		{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
		{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
		{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
	}
	out := make([]float32, 0, 36*vertexStride)
	for _, f := range faces {
		n, u, v := f[0], f[1].Mul(0.5), f[2].Mul(0.5)
		c := n.Mul(0.5)
		quad := [4]mgl32.Vec3{
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		}
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			p := quad[i]
			out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}
	return out
}

func demoLayout() []cube {
	return []cube{
		{Offset: mgl32.Vec3{0, 0.5, 0}, Color: colors.Color{1, 0.55, 0.1, 1}},
		{Offset: mgl32.Vec3{1.5, 0.5, 0}, Color: colors.Color{0.2, 0.8, 0.9, 1}},
		{Offset: mgl32.Vec3{-1.5, 0.5, 0}, Color: colors.Color{0.6, 0.35, 0.9, 1}},
		{Offset: mgl32.Vec3{0, 1.5, 0}, Color: colors.Gray},
	}
}

func (c cube) meshInfo() scene.MeshInfo {
	return scene.MeshInfo{
		Polys:  36,
		Verts:  24,
		Sphere: c.Offset.Vec4(float32(math.Sqrt(3) / 2)),
	}
}
