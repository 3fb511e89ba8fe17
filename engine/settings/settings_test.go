package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hubastard/orbit/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewport.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
enable_grid_display = false
bg_color_1 = "#ff0000"
grid_line_count = -4
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.EnableGridDisplay)
	assert.Equal(t, colors.Red, s.BGColor1)
	assert.Equal(t, 0, s.GridLineCount)
	assert.True(t, s.RenderBackgroundGradient)
	assert.Equal(t, Default().BGColor2, s.BGColor2)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`bg_color_1 = "#nothex"`), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewport.toml")
	want := Default()
	want.RenderSceneInformation = true
	want.GridSize = 2.5
	// colors survive the trip only at 8-bit precision
	for _, c := range []*colors.Color{&want.BGColor1, &want.BGColor2, &want.GridLineColor} {
		v, err := colors.ParseHex(c.Hex())
		require.NoError(t, err)
		*c = v
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore(t *testing.T) {
	var st Store
	assert.Equal(t, Default(), st.Current())

	s := Default()
	s.EnableGridDisplay = false
	st.Set(s)
	assert.False(t, st.Current().EnableGridDisplay)
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewport.toml")
	require.NoError(t, Save(path, Default()))

	st := NewStore(Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, st.Watch(ctx, path))

	s := Default()
	s.RenderSceneInformation = true
	require.NoError(t, Save(path, s))

	assert.Eventually(t, func() bool {
		return st.Current().RenderSceneInformation
	}, 5*time.Second, 20*time.Millisecond)
}
