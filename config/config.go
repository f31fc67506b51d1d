// Package config provides TOML-based configuration for gridview.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/staffledger/grid"
)

// Config is the root of config.toml.
type Config struct {
	Window     WindowConfig   `toml:"window"`
	Grid       GridConfig     `toml:"grid"`
	Theme      ThemeConfig    `toml:"theme"`
	ColorRules []ColorRule    `toml:"color_rules"`
	Log        LogConfig      `toml:"log"`
	Terminal   TerminalConfig `toml:"terminal"`
	Snapshot   SnapshotConfig `toml:"snapshot"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// GridConfig holds per-grid settings.
type GridConfig struct {
	// DPIScale overrides the scale reported by the monitor when non-zero.
	DPIScale       float32 `toml:"dpi_scale"`
	MinColumnWidth float32 `toml:"min_column_width"`
	ScrollbarSize  float32 `toml:"scrollbar_size"`
	LabelBarHeight float32 `toml:"label_bar_height"`
}

// ThemeConfig overrides grid colors. Unset colors keep the default theme.
type ThemeConfig struct {
	Background     Color `toml:"background"`
	Outline        Color `toml:"outline"`
	Frame          Color `toml:"frame"`
	ColumnLine     Color `toml:"column_line"`
	Row            Color `toml:"row"`
	RowHovered     Color `toml:"row_hovered"`
	RowSelected    Color `toml:"row_selected"`
	Text           Color `toml:"text"`
	LabelTop       Color `toml:"label_top"`
	LabelBottom    Color `toml:"label_bottom"`
	LabelText      Color `toml:"label_text"`
	ScrollbarTrack Color `toml:"scrollbar_track"`
	ScrollbarThumb Color `toml:"scrollbar_thumb"`
}

// ColorRule paints cells whose text equals Word.
type ColorRule struct {
	Word   string `toml:"word"`
	Color  Color  `toml:"color"`
	Column *int   `toml:"column"` // All columns when omitted
}

// LogConfig controls the log file.
type LogConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	Level   string `toml:"level"`
}

// TerminalConfig maps grid pixels onto terminal cells.
type TerminalConfig struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// SnapshotConfig sets defaults for offscreen renders.
type SnapshotConfig struct {
	Quality int `toml:"quality"` // JPEG quality, 1-100
}

// Color is a packed grid color parsed from "#rrggbb" or "#rrggbbaa".
// The zero value means unset.
type Color struct {
	Value uint32
	Set   bool
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	if s == "" {
		*c = Color{}
		return nil
	}
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xFF
	}
	*c = Color{
		Value: grid.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)),
		Set:   true,
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Set {
		return nil, nil
	}
	r, g, b, a := grid.UnpackRGBA(c.Value)
	return fmt.Appendf(nil, "#%02x%02x%02x%02x", r, g, b, a), nil
}

func (c Color) apply(dst *uint32) {
	if c.Set {
		*dst = c.Value
	}
}

// Style returns the default grid style with the theme and sizing overrides
// applied.
func (c *Config) Style() grid.Style {
	s := grid.DefaultStyle()
	t := c.Theme

	t.Background.apply(&s.BackgroundColor)
	t.Outline.apply(&s.OutlineColor)
	t.Frame.apply(&s.FrameColor)
	t.ColumnLine.apply(&s.ColumnLineColor)
	t.Row.apply(&s.RowColor)
	t.RowHovered.apply(&s.RowHoveredColor)
	t.RowSelected.apply(&s.RowSelectedColor)
	t.Text.apply(&s.TextColor)
	t.LabelTop.apply(&s.LabelTopColor)
	t.LabelBottom.apply(&s.LabelBottomColor)
	t.LabelText.apply(&s.LabelTextColor)
	t.ScrollbarTrack.apply(&s.ScrollbarTrackColor)
	t.ScrollbarThumb.apply(&s.ScrollbarThumbColor)

	if c.Grid.MinColumnWidth > 0 {
		s.MinColumnWidth = c.Grid.MinColumnWidth
	}
	if c.Grid.ScrollbarSize > 0 {
		s.ScrollbarSize = c.Grid.ScrollbarSize
	}
	if c.Grid.LabelBarHeight > s.RowInset {
		s.LabelBarHeight = c.Grid.LabelBarHeight
	}
	return s
}

// Rules converts the configured color rules for grid.WithColorRules.
// Later rules for the same word win.
func (c *Config) Rules() map[string]grid.ColorRule {
	out := make(map[string]grid.ColorRule, len(c.ColorRules))
	for _, r := range c.ColorRules {
		if r.Word == "" || !r.Color.Set {
			continue
		}
		col := grid.AllColumns
		if r.Column != nil {
			col = *r.Column
		}
		out[r.Word] = grid.ColorRule{Color: r.Color.Value, Column: col}
	}
	return out
}
