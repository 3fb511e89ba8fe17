package settings

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hubastard/orbit/engine/colors"
	"github.com/pelletier/go-toml/v2"
)

// Settings are the viewport options the host application exposes to the user.
// The viewport reads them every frame, so a new value applies on the next render.
type Settings struct {
	RenderBackgroundGradient bool         `toml:"render_background_gradient"`
	BGColor1                 colors.Color `toml:"bg_color_1"` // bottom of the gradient
	BGColor2                 colors.Color `toml:"bg_color_2"` // top of the gradient

	EnableGridDisplay bool         `toml:"enable_grid_display"`
	GridSize          float32      `toml:"grid_size"`
	GridLineCount     int          `toml:"grid_line_count"`
	GridLineColor     colors.Color `toml:"grid_line_color"`

	RenderSceneInformation bool `toml:"render_scene_information"`
}

func Default() Settings {
	return Settings{
		RenderBackgroundGradient: true,
		BGColor1:                 colors.Color{0.25, 0.25, 0.25, 1},
		BGColor2:                 colors.Color{0.05, 0.05, 0.05, 1},
		EnableGridDisplay:        true,
		GridSize:                 1,
		GridLineCount:            25,
		GridLineColor:            colors.Gray,
		RenderSceneInformation:   false,
	}
}

// Load reads a TOML file on top of Default(); keys missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings %q: %w", path, err)
	}
	if err := toml.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("parse settings %q: %w", path, err)
	}
	s.sanitize()
	return s, nil
}

// Save writes s as TOML.
func Save(path string, s Settings) error {
	b, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write settings %q: %w", path, err)
	}
	return nil
}

func (s *Settings) sanitize() {
	if s.GridLineCount < 0 {
		s.GridLineCount = 0
	}
	if s.GridSize < 0 {
		s.GridSize = -s.GridSize
	}
}

// Store publishes Settings to the render thread.
type Store struct {
	cur atomic.Pointer[Settings]
}

func NewStore(s Settings) *Store {
	st := &Store{}
	st.Set(s)
	return st
}

func (st *Store) Current() Settings {
	if p := st.cur.Load(); p != nil {
		return *p
	}
	return Default()
}

func (st *Store) Set(s Settings) {
	s.sanitize()
	st.cur.Store(&s)
}
