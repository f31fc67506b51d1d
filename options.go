package grid

import (
	"io"
	"log/slog"
)

// Option configures a Grid.
type Option func(*Grid)

// WithStyle sets the grid style.
func WithStyle(style Style) Option {
	return func(g *Grid) { g.style = style }
}

// WithLogger sets the logger used for debug records. The default discards
// everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Grid) {
		if l != nil {
			g.log = l
		}
	}
}

// WithName labels the grid in log records.
func WithName(name string) Option {
	return func(g *Grid) { g.name = name }
}

// WithColorRules installs color rules keyed by cell text.
func WithColorRules(rules map[string]ColorRule) Option {
	return func(g *Grid) {
		for word, r := range rules {
			g.colorRules[word] = r
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
