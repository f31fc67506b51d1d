package grid

import "strings"

// Clipboard is an optional Host capability for system clipboard access.
// Hosts that implement it receive the selected row when the user presses
// Ctrl+C over the grid.
//
// For GLFW:
//
//	func (h *Host) GetText() string {
//	    return h.window.GetClipboardString()
//	}
//
//	func (h *Host) SetText(text string) {
//	    h.window.SetClipboardString(text)
//	}
type Clipboard interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// RowText joins the cells of the row shown at slot with tabs.
// Returns "" for an invalid slot.
func (g *Grid) RowText(slot int) string {
	id, ok := g.store.rowAt(slot)
	if !ok {
		return ""
	}
	return strings.Join(g.store.rows[id], "\t")
}

// copySelection places the selected row on the host clipboard, if the host
// has one. Returns true when text was copied.
func (g *Grid) copySelection() bool {
	cb, ok := g.host.(Clipboard)
	if !ok || !g.IsSomeRowSelected() {
		return false
	}
	cb.SetText(g.RowText(g.selected))
	return true
}
