package grid

// HandleEvent applies one input event. Events must be delivered in the
// order they happened.
func (g *Grid) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case PointerMove:
		g.pointerMove(e.X, e.Y)
	case PointerDown:
		if e.Button == MouseButtonLeft {
			g.pointerDown(e.X, e.Y)
		}
	case PointerUp:
		if e.Button == MouseButtonLeft {
			g.pointerUp(e.X, e.Y)
		}
	case PointerLeave:
		g.pointerLeave()
	case Wheel:
		g.wheel(e)
	case KeyPress:
		g.keyDown(e)
	case Resize:
		g.resize(e.Width, e.Height)
	case ScrollTo:
		g.scrollTo(e.Axis, e.Pos)
	case DPIChanged:
		g.setDPI(e.Scale)
	}
}

func (g *Grid) pointerMove(x, y float32) {
	g.pointer = Vec2{X: x, Y: y}

	switch g.state {
	case DraggingColumnBorder:
		g.dragTo(x - g.hOffset)
		return
	case ScrollTracking:
		g.trackTo(g.trackAxis, g.pointer)
		return
	}

	switch {
	case y <= g.m.labelBar:
		g.unhoverRow()
		g.hoverLabelBar(x - g.hOffset)
	case g.overScrollbars(g.pointer):
		g.unhoverRow()
		g.resetLabelHover()
		g.setState(Idle)
	default:
		g.hoverRow(y)
	}
}

// hoverLabelBar updates the label bar state for the scroll-adjusted x.
func (g *Grid) hoverLabelBar(cx float32) {
	var end float32
	for i, col := range g.columns {
		end += col.Width

		d := end - cx
		if d < 0 {
			d = -d
		}
		if d <= g.m.dragTol {
			g.dragColumn = i
			g.resetLabelHover()
			g.setState(ResizeArmed)
			return
		}

		// Every later border is further right.
		if end > cx {
			g.hoverLabel(i)
			return
		}
	}

	g.dragColumn = none
	g.resetLabelHover()
	g.setState(Idle)
}

func (g *Grid) hoverLabel(col int) {
	g.dragColumn = none
	if g.state == AwaitingSortClick && g.clickedLabel == col {
		return
	}

	// Leaving the pressed label cancels the click.
	if g.clickedLabel != none {
		g.invalidateLabelBox(g.clickedLabel)
		g.clickedLabel = none
	}
	if g.hoveredLabel != col {
		g.invalidateLabelBox(g.hoveredLabel)
		g.hoveredLabel = col
		g.invalidateLabelBox(col)
	}
	g.setState(HoveringColumnLabel)
}

func (g *Grid) resetLabelHover() {
	if g.hoveredLabel != none {
		g.invalidateLabelBox(g.hoveredLabel)
	}
	if g.clickedLabel != none && g.clickedLabel != g.hoveredLabel {
		g.invalidateLabelBox(g.clickedLabel)
	}
	g.hoveredLabel = none
	g.clickedLabel = none
}

func (g *Grid) hoverRow(y float32) {
	g.dragColumn = none
	g.resetLabelHover()

	slot := floorInt((y - g.m.labelBar - g.vOffset) / g.m.row)
	if slot < 0 || slot >= g.store.DisplayedLen() {
		slot = none
	}
	if slot != g.hovered {
		g.invalidateRow(g.hovered)
		g.hovered = slot
		g.invalidateRow(slot)
	}

	if slot == none {
		g.setState(Idle)
	} else {
		g.setState(HoveringRow)
	}
}

func (g *Grid) unhoverRow() {
	if g.hovered != none {
		g.invalidateRow(g.hovered)
		g.hovered = none
	}
}

func (g *Grid) overScrollbars(p Vec2) bool {
	return g.vScrollRect().Contains(p) || g.hScrollRect().Contains(p) || g.fillerRect().Contains(p)
}

func (g *Grid) pointerDown(x, y float32) {
	// Hosts may deliver a press without a preceding move.
	if g.state != DraggingColumnBorder && g.state != ScrollTracking {
		g.pointerMove(x, y)
	}
	p := Vec2{X: x, Y: y}

	switch {
	case g.state == ResizeArmed:
		g.dragStartX = x - g.hOffset
		g.dragWidth = g.columns[g.dragColumn].Width
		g.setState(DraggingColumnBorder)

	case g.vScrollRect().Contains(p):
		if g.vInfo.Enabled() {
			g.trackAxis = AxisVertical
			g.setState(ScrollTracking)
			g.trackTo(AxisVertical, p)
		}

	case g.hScrollRect().Contains(p):
		if g.hInfo.Enabled() {
			g.trackAxis = AxisHorizontal
			g.setState(ScrollTracking)
			g.trackTo(AxisHorizontal, p)
		}

	case y <= g.m.labelBar:
		if g.hoveredLabel != none {
			g.clickedLabel = g.hoveredLabel
			g.invalidateLabelBox(g.clickedLabel)
			g.setState(AwaitingSortClick)
		}

	case g.fillerRect().Contains(p):
		// Inert.

	default:
		// Pressing below the last row deselects.
		if g.hovered != g.selected {
			g.selectSlot(g.hovered)
		}
	}
}

func (g *Grid) pointerUp(x, y float32) {
	switch g.state {
	case AwaitingSortClick:
		col := g.clickedLabel
		g.clickedLabel = none
		g.invalidateLabelBox(col)
		g.UnselectSelectedRow()
		g.SortByColumn(col)
	case DraggingColumnBorder:
		if g.dragColumn != none {
			g.log.Debug("grid: column resized", "grid", g.name, "column", g.dragColumn,
				"width", g.columns[g.dragColumn].Width)
		}
		g.setState(Idle)
	case ScrollTracking:
		g.setState(Idle)
	default:
		return
	}
	g.pointerMove(x, y)
}

// dragTo resizes the dragged column for the scroll-adjusted x.
func (g *Grid) dragTo(cx float32) {
	col := &g.columns[g.dragColumn]
	old := col.Width
	col.Width = maxf(g.m.minColumn, g.dragWidth+(cx-g.dragStartX))
	if col.Width == old {
		return
	}
	g.columnsWidth += col.Width - old

	left := g.columnLeft(g.dragColumn) + g.hOffset
	g.invalidateContent(RectFromPoints(left, 0, g.width, g.height))
	g.updateHScroll()
}

func (g *Grid) pointerLeave() {
	g.hovered = none
	g.hoveredLabel = none
	g.clickedLabel = none
	g.dragColumn = none
	g.setState(Idle)
	g.invalidateAll()
}

func (g *Grid) wheel(e Wheel) {
	if e.Shift {
		g.scrollColumns(wheelLines(e.DY))
	} else {
		g.scrollLines(wheelLines(e.DY))
	}
	g.scrollColumns(-wheelLines(e.DX))

	// Rows moved under a resting pointer.
	if g.state == HoveringRow || (g.state == Idle && g.pointer.Y > g.m.labelBar) {
		if !g.overScrollbars(g.pointer) && g.bounds().Contains(g.pointer) {
			g.hoverRow(g.pointer.Y)
		}
	}
}

// wheelLines rounds wheel motion away from zero to whole lines.
func wheelLines(v float32) int {
	switch {
	case v > 0:
		return max(1, int(v+0.5))
	case v < 0:
		return -max(1, int(-v+0.5))
	}
	return 0
}

func (g *Grid) keyDown(e KeyPress) {
	n := g.store.DisplayedLen()
	sel := g.selected
	page := max(1, g.clipper().RowsFitting(g.viewportHeight()))

	var target int
	switch e.Key {
	case KeyUp:
		if sel == none {
			target = n - 1
		} else {
			target = max(sel-1, 0)
		}
	case KeyDown:
		if sel == none {
			target = 0
		} else {
			target = min(sel+1, n-1)
		}
	case KeyPageUp:
		target = max(sel-page, 0)
	case KeyPageDown:
		target = min(max(sel, 0)+page, n-1)
	case KeyHome:
		target = 0
	case KeyEnd:
		target = n - 1
	case KeyEscape:
		g.UnselectSelectedRow()
		return
	case KeyC:
		if e.Mods.Has(ModCtrl) {
			g.copySelection()
		}
		return
	default:
		return
	}

	if n == 0 {
		return
	}
	g.selectSlot(target)
	g.scrollIntoView(target)
}

func (g *Grid) resize(width, height int) {
	if float32(width) == g.width && float32(height) == g.height {
		return
	}
	g.width, g.height = float32(width), float32(height)
	if g.surface != nil {
		g.surface.Resize(width, height)
	}
	g.clampOffsets()
	g.updateScrollbars()
	g.invalidateAll()
}

// setDPI rescales metrics, column widths and offsets to a new scale.
func (g *Grid) setDPI(scale float32) {
	if scale <= 0 || scale == g.dpi {
		return
	}
	ratio := scale / g.dpi
	g.dpi = scale
	g.m = scaledMetrics(g.style, scale)

	g.columnsWidth = 0
	for i := range g.columns {
		w := maxf(g.m.minColumn, float32(int(g.columns[i].Width*ratio)))
		g.columns[i].Width = w
		g.columnsWidth += w
	}
	g.vOffset *= ratio
	g.hOffset *= ratio

	g.clampOffsets()
	g.updateScrollbars()
	g.invalidateAll()
}
