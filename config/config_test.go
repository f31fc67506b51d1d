package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/grid"
)

const sample = `
[window]
width = 1280
height = 720
title = "people"

[grid]
dpi_scale = 1.5
min_column_width = 40

[theme]
row = "#fafafa"
row_selected = "#3366cc80"

[[color_rules]]
word = "active"
color = "#008000"
column = 1

[[color_rules]]
word = "closed"
color = "#ff0000"

[log]
enabled = true
level = "debug"
`

func TestLoadFromReader(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, "people", cfg.Window.Title)
	assert.InDelta(t, 1.5, cfg.Grid.DPIScale, 1e-6)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Sections not in the file keep their defaults.
	assert.Equal(t, 8, cfg.Terminal.CellWidth)
	assert.Equal(t, 90, cfg.Snapshot.Quality)
}

func TestStyleOverrides(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(sample))
	require.NoError(t, err)

	s := cfg.Style()
	def := grid.DefaultStyle()

	assert.Equal(t, grid.RGB(0xfa, 0xfa, 0xfa), s.RowColor)
	assert.Equal(t, grid.RGBA(0x33, 0x66, 0xcc, 0x80), s.RowSelectedColor)
	assert.Equal(t, def.RowHoveredColor, s.RowHoveredColor)
	assert.Equal(t, float32(40), s.MinColumnWidth)
	assert.Equal(t, def.LabelBarHeight, s.LabelBarHeight)
}

func TestRules(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(sample))
	require.NoError(t, err)

	rules := cfg.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, grid.ColorRule{Color: grid.RGB(0, 128, 0), Column: 1}, rules["active"])
	assert.Equal(t, grid.ColorRule{Color: grid.RGB(255, 0, 0), Column: grid.AllColumns}, rules["closed"])
}

func TestColorRoundTrip(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#12345678")))
	out, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#12345678", string(out))
}

func TestInvalidColor(t *testing.T) {
	tests := []string{"#123", "#gggggg", "#1234567"}
	for _, tt := range tests {
		var c Color
		assert.Error(t, c.UnmarshalText([]byte(tt)), tt)
	}
}

func TestValidate(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[window]\nwidth = -1\n"))
	assert.ErrorContains(t, err, "window size")

	_, err = LoadFromReader(strings.NewReader("[snapshot]\nquality = 0\n"))
	assert.ErrorContains(t, err, "quality")

	_, err = LoadFromReader(strings.NewReader("[[color_rules]]\nword = \"x\"\ncolor = \"#000000\"\ncolumn = -4\n"))
	assert.ErrorContains(t, err, "column -4")
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRIDVIEW_DPI_SCALE", "2")
	t.Setenv("GRIDVIEW_LOG_LEVEL", "warn")

	cfg, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, cfg.Grid.DPIScale, 1e-6)
	assert.True(t, cfg.Log.Enabled)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadSearchesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Window, cfg.Window)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "gridview"), 0o755))
	path := filepath.Join(dir, "gridview", "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "people", cfg.Window.Title)
}

func TestLoadFromFileWrapsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\n"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, 960, cfg.Window.Width)
}
