package terminal

import (
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/staffledger/grid"
)

// Host provides the terminal-wide grid capabilities: the system clipboard,
// the cursor shape and selection notifications. The DPI scale is always 1.
type Host struct {
	grid.BaseHost

	cellW, cellH int
	log          *slog.Logger
	cursor       grid.Cursor
	notify       func(grid.Notification)
	copied       string // Last clipboard write, kept when the system clipboard fails
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithNotify installs the callback that receives selection notifications.
func WithNotify(fn func(grid.Notification)) HostOption {
	return func(h *Host) { h.notify = fn }
}

// WithHostLogger sets the logger for host records.
func WithHostLogger(l *slog.Logger) HostOption {
	return func(h *Host) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHost creates a host for a terminal whose cells stand for
// cellWidth x cellHeight grid pixels.
func NewHost(cellWidth, cellHeight int, opts ...HostOption) *Host {
	h := &Host{
		cellW: max(cellWidth, 1),
		cellH: max(cellHeight, 1),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// CellSize returns the pixel size of one terminal cell.
func (h *Host) CellSize() (width, height int) { return h.cellW, h.cellH }

// NewSurface allocates a cell buffer.
func (h *Host) NewSurface(width, height int) (grid.Surface, error) {
	return NewSurface(width, height, h.cellW, h.cellH), nil
}

// SetCursor records the requested pointer shape. Terminals cannot change
// it, so the model shows it in the status line instead.
func (h *Host) SetCursor(c grid.Cursor) { h.cursor = c }

// Cursor returns the last requested pointer shape.
func (h *Host) Cursor() grid.Cursor { return h.cursor }

// Notify forwards a selection notification to the callback.
func (h *Host) Notify(n grid.Notification) {
	h.log.Debug("terminal: notification", "kind", n.Kind, "grid", n.Grid.Name(), "slot", n.Slot)
	if h.notify != nil {
		h.notify(n)
	}
}

// GetText reads the system clipboard, falling back to the last text copied
// through this host.
func (h *Host) GetText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		h.log.Warn("terminal: clipboard read failed", "error", err)
		return h.copied
	}
	return text
}

// SetText writes the system clipboard.
func (h *Host) SetText(text string) {
	h.copied = text
	if err := clipboard.WriteAll(text); err != nil {
		h.log.Warn("terminal: clipboard write failed", "error", err)
	}
}
