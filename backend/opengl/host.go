package opengl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/staffledger/grid"
)

// Host provides the window-level grid capabilities: DPI scale, cursors,
// the clipboard and selection notifications. Grids get their surfaces
// through a Router, which wraps the host per pane.
type Host struct {
	window  *glfw.Window
	dev     *Device
	log     *slog.Logger
	scale   float32 // Overrides the monitor content scale when non-zero
	cursors map[grid.Cursor]*glfw.Cursor
	cursor  grid.Cursor
	notify  func(grid.Notification)
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithDPIScale fixes the DPI scale instead of following the monitor.
func WithDPIScale(scale float32) HostOption {
	return func(h *Host) { h.scale = scale }
}

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

// NewHost creates a host for window. Call Destroy before terminating GLFW.
func NewHost(window *glfw.Window, dev *Device, opts ...HostOption) *Host {
	h := &Host{
		window:  window,
		dev:     dev,
		log:     slog.Default(),
		cursors: make(map[grid.Cursor]*glfw.Cursor),
	}
	for _, opt := range opts {
		opt(h)
	}
	// A nil cursor restores the default arrow.
	h.cursors[grid.CursorResizeEW] = glfw.CreateStandardCursor(glfw.HResizeCursor)
	return h
}

// DPIScale returns the configured scale, or the window content scale.
func (h *Host) DPIScale() float32 {
	if h.scale > 0 {
		return h.scale
	}
	x, _ := h.window.GetContentScale()
	if x <= 0 {
		return 1
	}
	return x
}

// NewSurface allocates an offscreen framebuffer.
func (h *Host) NewSurface(width, height int) (grid.Surface, error) {
	return h.dev.NewSurface(width, height)
}

// Invalidate wakes the event loop so the next frame paints.
func (h *Host) Invalidate(*grid.Grid, grid.Rect) {
	glfw.PostEmptyEvent()
}

// SetCursor switches the window cursor.
func (h *Host) SetCursor(c grid.Cursor) {
	if c == h.cursor {
		return
	}
	h.cursor = c
	h.window.SetCursor(h.cursors[c])
}

// Notify forwards a selection notification to the callback.
func (h *Host) Notify(n grid.Notification) {
	h.log.Debug("opengl: notification", "kind", n.Kind, "grid", n.Grid.Name(), "slot", n.Slot)
	if h.notify != nil {
		h.notify(n)
	}
}

// GetText returns the clipboard text.
func (h *Host) GetText() string {
	return h.window.GetClipboardString()
}

// SetText replaces the clipboard text.
func (h *Host) SetText(text string) {
	h.window.SetClipboardString(text)
}

// Destroy frees the cursors.
func (h *Host) Destroy() {
	for c, cur := range h.cursors {
		if cur != nil {
			cur.Destroy()
		}
		delete(h.cursors, c)
	}
}
