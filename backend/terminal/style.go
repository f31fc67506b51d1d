package terminal

import "github.com/staffledger/grid"

// Style adapts base to a cell grid of cellWidth x cellHeight pixels: one
// character per cell, a label bar two cells high and rows one cell high.
func Style(base grid.Style, cellWidth, cellHeight int) grid.Style {
	cw, ch := float32(cellWidth), float32(cellHeight)
	s := base
	s.CharWidth = cw
	s.CharHeight = ch
	s.FontScale = 1
	s.LabelBarHeight = 2 * ch
	s.RowInset = ch
	s.ScrollbarSize = ch
	s.DragTolerance = cw / 2
	s.MinColumnWidth = 4 * cw
	s.CellPadding = cw / 2
	return s
}
