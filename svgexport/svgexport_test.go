package svgexport

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/cohortline/markers"
)

func TestRender_WellFormed(t *testing.T) {
	ms := []markers.Marker{{Year: 1970, ID: "a"}, {Year: 1985, ID: "b"}}
	cfg := DefaultConfig()
	cfg.Title = `Cohorts <"mine" & yours>`

	out := Render(ms, markers.DefaultBounds(), cfg)
	require.True(t, strings.HasPrefix(out, `<?xml`))
	require.True(t, strings.HasSuffix(out, "</svg>"))

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}

	assert.Contains(t, out, "Cohorts &lt;&quot;mine&quot; &amp; yours&gt;")
	assert.Equal(t, 2, strings.Count(out, "<circle"))
	assert.Contains(t, out, ">1970</text>")
	assert.Contains(t, out, ">1985</text>")
	assert.Contains(t, out, `fill="#dc3545"`)
	assert.Contains(t, out, `fill="#0d6efd"`)
}

func TestRender_BandsAndTicks(t *testing.T) {
	out := Render(nil, markers.DefaultBounds(), DefaultConfig())

	// boomer band starts before the axis and is clipped at 1950
	assert.Contains(t, out, `class="gen-baby-boomer"`)
	assert.Contains(t, out, `x="50" y="88"`)
	assert.Contains(t, out, `class="gen-alpha"`)
	// 1950..2020 every ten years
	assert.Equal(t, 8, strings.Count(out, `class="tick-text"`))
	assert.NotContains(t, out, "<circle")
}

func TestRender_MarkerPosition(t *testing.T) {
	cfg := DefaultConfig()
	b := markers.Bounds{Min: 1950, Max: 2050}
	out := Render([]markers.Marker{{Year: 2000, ID: "m"}}, b, cfg)
	// halfway along a 900px track that starts at 50
	assert.Contains(t, out, `<circle cx="500" cy="100"`)
}

func TestRender_Degenerate(t *testing.T) {
	assert.Empty(t, Render(nil, markers.Bounds{Min: 2000, Max: 2000}, DefaultConfig()))
	cfg := DefaultConfig()
	cfg.Layout.Width = 10
	assert.Empty(t, Render(nil, markers.DefaultBounds(), cfg))
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: My family
layout:
  width: 1600
marker:
  colors: ["#000000"]
`), 0o644))

	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "My family", cfg.Title)
	assert.Equal(t, 1600, cfg.Layout.Width)
	assert.Equal(t, 200, cfg.Layout.Height, "unset keys keep their defaults")
	assert.Equal(t, []string{"#000000"}, cfg.Marker.Colors)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "error reading svg style")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("layout: [1, 2"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "error parsing svg style")
}
