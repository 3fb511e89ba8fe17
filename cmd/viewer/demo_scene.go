package main

import (
	"fmt"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	glbackend "github.com/hubastard/orbit/engine/gfx/gl"
	"github.com/hubastard/orbit/engine/scene"
)

// demoScene draws a few lit cubes from one shared vertex buffer.
type demoScene struct {
	r      *glbackend.RendererGL
	cubes  []cube
	meshes []scene.Mesh

	prog  uint32
	vbo   uint32
	count int32

	uViewProj, uOffset, uColor, uLightDir int32
}

func newDemoScene(r *glbackend.RendererGL) *demoScene {
	s := &demoScene{r: r, cubes: demoLayout()}
	for _, c := range s.cubes {
		s.meshes = append(s.meshes, c.meshInfo())
	}
	return s
}

// Setup compiles the program and uploads geometry. The GL context must be current.
func (s *demoScene) Setup(vs, fs string) error {
	prog, err := s.r.CompileProgram(vs, fs)
	if err != nil {
		return fmt.Errorf("demo scene shaders: %w", err)
	}
	s.prog = prog
	s.uViewProj = gl.GetUniformLocation(prog, gl.Str("uViewProj\x00"))
	s.uOffset = gl.GetUniformLocation(prog, gl.Str("uOffset\x00"))
	s.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	s.uLightDir = gl.GetUniformLocation(prog, gl.Str("uLightDir\x00"))

	verts := cubeVertices()
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	s.r.Objects().Retain(glbackend.ObjectBuffer, s.vbo)
	s.count = int32(len(verts) / vertexStride)
	return nil
}

// Release hands the GL objects back for deletion at the next sweep.
func (s *demoScene) Release() {
	if s.prog != 0 {
		s.r.ReleaseProgram(s.prog)
		s.prog = 0
	}
	if s.vbo != 0 {
		s.r.Objects().Release(glbackend.ObjectBuffer, s.vbo)
		s.vbo = 0
	}
}

func (s *demoScene) Kind() string         { return "DemoScene" }
func (s *demoScene) Meshes() []scene.Mesh { return s.meshes }

func (s *demoScene) Render(cam *scene.Camera) {
	if s.prog == 0 {
		return
	}
	vp := cam.ViewProjection()
	light := mgl32.Vec3{-0.4, -1, 0.6}

	gl.UseProgram(s.prog)
	gl.UniformMatrix4fv(s.uViewProj, 1, false, &vp[0])
	gl.Uniform3f(s.uLightDir, light[0], light[1], light[2])

	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.NORMAL_ARRAY)
	gl.VertexPointer(3, gl.FLOAT, vertexStride*4, gl.PtrOffset(0))
	gl.NormalPointer(gl.FLOAT, vertexStride*4, gl.PtrOffset(3*4))

	gl.Enable(gl.CULL_FACE)
	for _, c := range s.cubes {
		gl.Uniform3f(s.uOffset, c.Offset[0], c.Offset[1], c.Offset[2])
		gl.Uniform4f(s.uColor, c.Color.R(), c.Color.G(), c.Color.B(), c.Color.A())
		gl.DrawArrays(gl.TRIANGLES, 0, s.count)
	}

	gl.DisableClientState(gl.NORMAL_ARRAY)
	gl.DisableClientState(gl.VERTEX_ARRAY)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.UseProgram(0)
}
