//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpNestedSpans(t *testing.T) {
	Init(64)
	endTick := Start("viewport.Tick")
	endRender := Start("viewport.RenderFrame")
	endRender()
	endTick()
	Start("viewport.Tick") // still open, not dumped

	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, Dump(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(b, &doc))

	require.Len(t, doc.Profiles, 1)
	var kinds []string
	for _, e := range doc.Profiles[0].Events {
		kinds = append(kinds, e.Type+doc.Shared.Frames[e.Frame].Name)
	}
	assert.Equal(t, []string{
		"Oviewport.Tick",
		"Oviewport.RenderFrame",
		"Cviewport.RenderFrame",
		"Cviewport.Tick",
	}, kinds)
}

func TestSpeedscopeTiesStayNested(t *testing.T) {
	doc := speedscope([]span{
		{name: "child", start: 1000, end: 1000, depth: 1},
		{name: "parent", start: 1000, end: 1000, depth: 0},
		{name: "next", start: 1001, end: 2000, depth: 0},
	})
	var got []string
	for _, e := range doc.Profiles[0].Events {
		got = append(got, e.Type+doc.Shared.Frames[e.Frame].Name)
	}
	assert.Equal(t, []string{"Oparent", "Ochild", "Cchild", "Cparent", "Onext", "Cnext"}, got)
	assert.Equal(t, int64(2), doc.Profiles[0].EndValue)
}

func TestRingKeepsNewest(t *testing.T) {
	Init(2)
	for _, n := range []string{"a", "b", "c"} {
		Start(n)()
	}
	var names []string
	for _, s := range rec.finished() {
		names = append(names, s.name)
	}
	assert.Equal(t, []string{"b", "c"}, names)
}

func TestDumpEmpty(t *testing.T) {
	Init(4)
	assert.Error(t, Dump(filepath.Join(t.TempDir(), "p.json")))
}
