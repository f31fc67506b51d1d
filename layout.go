package grid

// Regions of the grid, in grid pixels. The label bar spans the top, the
// vertical scrollbar runs down the right edge below it, the horizontal
// scrollbar runs along the bottom, and a filler square sits where the two
// scrollbars meet.

// labelBarRect covers the column labels and the line below them.
func (g *Grid) labelBarRect() Rect {
	return Rect{X: 0, Y: 0, W: g.width, H: g.m.labelBar + 1}
}

// rowsRect is the area rows are visible in.
func (g *Grid) rowsRect() Rect {
	return RectFromPoints(1, g.m.labelBar+1, g.width-g.m.scrollbar-1, g.height-g.m.scrollbar-1)
}

// vScrollRect is the vertical scrollbar.
func (g *Grid) vScrollRect() Rect {
	sb := g.m.scrollbar
	return Rect{X: g.width - sb - 1, Y: g.m.labelBar + 1, W: sb, H: g.height - g.m.labelBar - sb - 1}
}

// hScrollRect is the horizontal scrollbar.
func (g *Grid) hScrollRect() Rect {
	sb := g.m.scrollbar
	return Rect{X: 1, Y: g.height - sb - 1, W: g.width - sb - 1, H: sb}
}

// fillerRect is the square below the vertical scrollbar.
func (g *Grid) fillerRect() Rect {
	sb := g.m.scrollbar
	return Rect{X: g.width - sb, Y: g.height - sb, W: sb - 1, H: sb - 1}
}

// bounds is the whole grid.
func (g *Grid) bounds() Rect {
	return Rect{W: g.width, H: g.height}
}

// rowRect returns the on-screen rectangle of slot at the current offset.
func (g *Grid) rowRect(slot int) Rect {
	top := g.m.labelBar + float32(slot)*g.m.row + g.vOffset
	return Rect{X: 1, Y: top, W: g.width - g.m.scrollbar - 2, H: g.m.row}
}

// columnLeft returns the unscrolled x of column col's left edge.
func (g *Grid) columnLeft(col int) float32 {
	var x float32
	for i := 0; i < col && i < len(g.columns); i++ {
		x += g.columns[i].Width
	}
	return x
}

// labelBoxRect returns the on-screen label box of column col.
func (g *Grid) labelBoxRect(col int) Rect {
	if col < 0 || col >= len(g.columns) {
		return Rect{}
	}
	return Rect{X: g.columnLeft(col) + g.hOffset, Y: 0, W: g.columns[col].Width, H: g.m.labelBar}
}

// viewportHeight is the height rows are fully visible in.
func (g *Grid) viewportHeight() float32 {
	return g.height - g.m.labelBar - g.m.scrollbar - 1
}

// clipper returns the visible slot range at the current offset.
func (g *Grid) clipper() *ListClipper {
	return NewListClipper(g.store.DisplayedLen(), g.m.row, g.height-g.m.labelBar, g.vOffset)
}

// invalidate marks r dirty and asks the host for a paint.
func (g *Grid) invalidate(r Rect) {
	r = r.Intersect(g.bounds())
	if r.Empty() {
		return
	}
	g.dirty.Add(r)
	g.host.Invalidate(g, r)
}

// invalidateContent marks r dirty except where it overlaps the
// scrollbars, which repaint only when their state changes.
func (g *Grid) invalidateContent(r Rect) {
	var rg Region
	rg.Add(r.Intersect(g.bounds()))
	rg.Subtract(g.vScrollRect())
	rg.Subtract(g.hScrollRect())
	for _, piece := range rg.Rects() {
		g.invalidate(piece)
	}
}

// invalidateAll marks the whole grid dirty.
func (g *Grid) invalidateAll() {
	g.invalidate(g.bounds())
}

// invalidateRow marks one displayed row dirty. Parts scrolled under the
// label bar or past the scrollbars are left alone.
func (g *Grid) invalidateRow(slot int) {
	if slot < 0 || slot >= g.store.DisplayedLen() {
		return
	}
	g.invalidate(g.rowRect(slot).Intersect(g.rowsRect()))
}

// invalidateRowsArea marks every visible row dirty, leaving the label bar
// and scrollbars valid.
func (g *Grid) invalidateRowsArea() {
	g.invalidate(g.rowsRect())
}

// invalidateLabelBox marks the label box of column col dirty.
func (g *Grid) invalidateLabelBox(col int) {
	g.invalidate(g.labelBoxRect(col))
}
