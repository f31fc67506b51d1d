package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/gridview/config.toml
//  2. ~/.config/gridview/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  960,
			Height: 540,
			Title:  "gridview",
		},
		Log: LogConfig{
			Level: "info",
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Snapshot: SnapshotConfig{
			Quality: 90,
		},
	}
}

// Validate rejects values no grid can be built with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Grid.DPIScale < 0 {
		return fmt.Errorf("dpi_scale %v must not be negative", c.Grid.DPIScale)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell %dx%d must be positive", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Snapshot.Quality < 1 || c.Snapshot.Quality > 100 {
		return fmt.Errorf("snapshot quality %d out of range 1-100", c.Snapshot.Quality)
	}
	for i, r := range c.ColorRules {
		if r.Column != nil && *r.Column < -1 {
			return fmt.Errorf("color rule %d (%q): column %d out of range", i, r.Word, *r.Column)
		}
	}
	return nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GRIDVIEW_DPI_SCALE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.Grid.DPIScale = float32(f)
		}
	}
	if v := os.Getenv("GRIDVIEW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
		cfg.Log.Enabled = true
	}
	if v := os.Getenv("GRIDVIEW_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("GRIDVIEW_TITLE"); v != "" {
		cfg.Window.Title = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "gridview", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "gridview", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
