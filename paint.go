package grid

import "fmt"

// NeedsPaint reports whether anything is dirty.
func (g *Grid) NeedsPaint() bool {
	return !g.dirty.Empty()
}

// Dirty returns the areas that the next Paint will repaint.
func (g *Grid) Dirty() []Rect {
	return append([]Rect(nil), g.dirty.Rects()...)
}

// Paint repaints the dirty areas onto the surface and marks the grid clean.
// Each dirty rectangle is painted with every layer clipped to it, so
// anything outside keeps the pixels of earlier paints.
func (g *Grid) Paint() error {
	if g.dirty.Empty() || g.surface == nil {
		return nil
	}

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.FontTextureID = g.surface.FontTextureID()

	for _, r := range g.dirty.Rects() {
		dl.PushClip(r)
		g.paintLayers(dl, r)
		dl.PopClipRect()
	}
	dl.Finalize()
	g.dirty.Clear()

	if err := g.surface.Render(dl); err != nil {
		return fmt.Errorf("grid: render: %w", err)
	}
	return nil
}

// PaintAll marks the whole grid dirty and paints it.
func (g *Grid) PaintAll() error {
	g.dirty.Add(g.bounds())
	return g.Paint()
}

// paintLayers paints back to front. Layers that cannot reach clip are
// skipped.
func (g *Grid) paintLayers(dl *DrawList, clip Rect) {
	g.paintBackground(dl)
	if clip.Intersects(g.rowsRect()) {
		g.paintRowBand(dl)
		g.paintRows(dl, clip)
	}
	if clip.Intersects(g.labelBarRect()) {
		g.paintLabelBar(dl)
	}
	g.paintFrame(dl)
	g.paintColumns(dl, clip)
	if r := g.vScrollRect(); clip.Intersects(r) {
		g.paintScrollbar(dl, r, g.vInfo, AxisVertical)
	}
	if r := g.hScrollRect(); clip.Intersects(r) {
		g.paintScrollbar(dl, r, g.hInfo, AxisHorizontal)
	}
	if r := g.fillerRect(); clip.Intersects(r) {
		dl.AddRect(r.X, r.Y, r.W, r.H, g.style.FillerColor)
	}
}

func (g *Grid) paintBackground(dl *DrawList) {
	dl.AddRect(0, 0, g.width, g.height, g.style.BackgroundColor)
	dl.AddRectOutline(0, 0, g.width, g.height, g.style.OutlineColor, 1)
}

// paintRowBand fills the area covered by displayed rows.
func (g *Grid) paintRowBand(dl *DrawList) {
	n := g.store.DisplayedLen()
	if n == 0 {
		return
	}
	dl.PushTranslate(0, g.vOffset)
	dl.AddRect(1, g.m.labelBar, g.width-g.m.scrollbar-1, float32(n)*g.m.row, g.style.RowColor)
	dl.PopTranslate()
}

// paintRows draws the visible rows that overlap clip.
func (g *Grid) paintRows(dl *DrawList, clip Rect) {
	c := g.clipper()
	for slot := c.StartIdx; slot < c.EndIdx; slot++ {
		r := g.rowRect(slot)
		r.W = g.width - 2
		if r.Intersects(clip) {
			g.paintRow(dl, slot)
		}
	}
}

func (g *Grid) paintRow(dl *DrawList, slot int) {
	top := g.m.labelBar + float32(slot)*g.m.row

	// The tint ignores the horizontal offset.
	if slot == g.selected || slot == g.hovered {
		tint := g.style.RowHoveredColor
		if slot == g.selected {
			tint = g.style.RowSelectedColor
		}
		dl.PushTranslate(0, g.vOffset)
		dl.AddRect(1, top, g.width-2, g.m.row, tint)
		dl.PopTranslate()
	}

	row := g.store.rows[g.store.shown[slot]]

	// A row may have fewer cells than there are columns, or more.
	used := min(len(g.columns), len(row))

	dl.PushTranslate(g.hOffset, g.vOffset)
	var right float32
	for col := 0; col < used; col++ {
		w := g.columns[col].Width
		right += w
		if !g.columnOnScreen(right, w) {
			continue
		}
		box := Rect{X: right - w, Y: top, W: w, H: g.m.row}
		g.paintText(dl, box, row[col], g.wordColor(row[col], col))
	}
	dl.PopTranslate()
}

// columnOnScreen reports whether a column ending at the unscrolled x right
// is at least partly visible.
func (g *Grid) columnOnScreen(right, width float32) bool {
	return right+g.hOffset > 0 && right+g.hOffset-width < g.width
}

// paintText draws text centered in box, ending it with an ellipsis when
// it does not fit. box is in translated coordinates.
func (g *Grid) paintText(dl *DrawList, box Rect, text string, color uint32) {
	text = TruncateText(text, box.W-2*g.m.padding, g.m.charWidth)
	if text == "" {
		return
	}
	x, y := centerText(text, box, g.m.charWidth, g.m.charHeight)

	dl.PushClip(box.Translate(dl.Translation()))
	dl.AddText(x, y, text, color, g.m.charWidth, g.m.charHeight)
	dl.PopClipRect()
}

// paintLabelBar draws the two-tone bar and the hovered or pressed label box.
func (g *Grid) paintLabelBar(dl *DrawList) {
	half := float32(int(g.m.labelBar / 2))
	dl.AddRect(1, 1, g.width-2, half, g.style.LabelTopColor)
	dl.AddRect(1, half+1, g.width-2, g.m.labelBar-half-1, g.style.LabelBottomColor)

	col := g.hoveredLabel
	topColor, bottomColor := g.style.LabelHoveredTopColor, g.style.LabelHoveredBottomColor
	if g.clickedLabel != none {
		col = g.clickedLabel
		topColor, bottomColor = g.style.LabelClickedTopColor, g.style.LabelClickedBottomColor
	}
	if col != none && col < len(g.columns) {
		pos := g.columnLeft(col)
		left := maxf(pos+1, 1-g.hOffset)
		right := minf(pos+g.columns[col].Width, g.width-g.hOffset-1)

		dl.PushTranslate(g.hOffset, 0)
		dl.AddRect(left, 1, right-left, half, topColor)
		dl.AddRect(left, half+1, right-left, g.m.labelBar-half-1, bottomColor)
		dl.PopTranslate()
	}

	dl.AddLine(0, g.m.labelBar, g.width, g.m.labelBar, g.style.LabelUnderlineColor, 1)
}

// paintFrame draws the border lines on top, bottom and right.
func (g *Grid) paintFrame(dl *DrawList) {
	dl.AddLine(0, 0, g.width, 0, g.style.FrameColor, 1)
	dl.AddLine(0, g.height-1, g.width, g.height-1, g.style.FrameColor, 1)
	dl.AddLine(g.width-1, g.m.labelBar, g.width-1, g.height-1, g.style.FrameColor, 1)
}

// paintColumns draws the separator right of every column and its label.
func (g *Grid) paintColumns(dl *DrawList, clip Rect) {
	dl.PushTranslate(g.hOffset, 0)
	var right float32
	for _, col := range g.columns {
		right += col.Width
		if !g.columnOnScreen(right, col.Width) {
			continue
		}
		if right+g.hOffset-col.Width > clip.Right() || right+g.hOffset+1 < clip.X {
			continue
		}

		dl.AddLine(right, 0, right, g.height-g.m.scrollbar, g.style.ColumnLineColor, 1)
		if clip.Y < g.m.labelBar {
			box := Rect{X: right - col.Width, Y: 0, W: col.Width, H: g.m.labelBar}
			g.paintText(dl, box, col.Name, g.style.LabelTextColor)
		}
	}
	dl.PopTranslate()
}

func (g *Grid) paintScrollbar(dl *DrawList, r Rect, si ScrollInfo, axis Axis) {
	dl.AddRect(r.X, r.Y, r.W, r.H, g.style.ScrollbarTrackColor)
	if !si.Enabled() {
		return
	}
	switch axis {
	case AxisVertical:
		off, length := si.Thumb(r.H)
		dl.AddRect(r.X+2, r.Y+off, r.W-4, length, g.style.ScrollbarThumbColor)
	case AxisHorizontal:
		off, length := si.Thumb(r.W)
		dl.AddRect(r.X+off, r.Y+2, length, r.H-4, g.style.ScrollbarThumbColor)
	}
}
