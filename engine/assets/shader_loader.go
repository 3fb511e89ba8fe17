package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed shaders
var builtin embed.FS

// Shaders is the shader source set: the built-in GLSL files, optionally
// overridden by files of the same name in a directory on disk.
type Shaders struct {
	fsys fs.FS
}

// BuiltinShaders serves only the embedded shaders.
func BuiltinShaders() *Shaders {
	sub, _ := fs.Sub(builtin, "shaders")
	return &Shaders{fsys: sub}
}

// ShadersFrom serves files from dir, falling back to the built-in set.
func ShadersFrom(dir string) *Shaders {
	return &Shaders{fsys: overlay{os.DirFS(dir), BuiltinShaders().fsys}}
}

// Load reads a GLSL file into a null-terminated string for OpenGL.
func (s *Shaders) Load(name string) (string, error) {
	b, err := fs.ReadFile(s.fsys, path.Clean(filepath.ToSlash(name)))
	if err != nil {
		return "", fmt.Errorf("load shader %q: %w", name, err)
	}
	// Ensure null termination for gl.Str
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// LoadPair loads <name>.vert and <name>.frag.
func (s *Shaders) LoadPair(name string) (vs, frag string, err error) {
	if vs, err = s.Load(name + ".vert"); err != nil {
		return "", "", err
	}
	if frag, err = s.Load(name + ".frag"); err != nil {
		return "", "", err
	}
	return vs, frag, nil
}

type overlay struct{ top, base fs.FS }

func (o overlay) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		return f, nil
	}
	return o.base.Open(name)
}
