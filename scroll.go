package grid

// Scrolling constants, in pixels before DPI scaling is applied to rows.
const (
	vScrollStep  = 10  // Vertical wheel line
	hScrollStep  = 20  // Horizontal wheel line
	vScrollSlack = 100 // Extra room below the last row
	minThumb     = 8
)

// ScrollInfo describes a scrollbar in abstract units: the thumb covers
// Page units of the range [Min, Max] starting at Pos.
type ScrollInfo struct {
	Min, Max int
	Page     int
	Pos      int
}

// Enabled reports whether the content overflows, so the thumb can move.
func (si ScrollInfo) Enabled() bool {
	return si.Max > si.Min && si.Page <= si.Max-si.Min
}

// maxPos is the furthest position the thumb can reach.
func (si ScrollInfo) maxPos() int {
	return max(si.Min, si.Max-max(si.Page-1, 0))
}

// Thumb returns the thumb span inside a track of the given length.
func (si ScrollInfo) Thumb(track float32) (offset, length float32) {
	span := float32(si.Max - si.Min + 1)
	length = maxf(minThumb, track*float32(si.Page)/span)
	if length > track {
		length = track
	}
	travel := si.maxPos() - si.Min
	if travel <= 0 {
		return 0, length
	}
	pos := clampf(float32(si.Pos-si.Min), 0, float32(travel))
	return (track - length) * pos / float32(travel), length
}

// positionAt maps a point on the track to a thumb position, centering the
// thumb on it.
func (si ScrollInfo) positionAt(track, at float32) int {
	_, length := si.Thumb(track)
	if track <= length {
		return si.Min
	}
	frac := clampf((at-length/2)/(track-length), 0, 1)
	return si.Min + int(frac*float32(si.maxPos()-si.Min))
}

// VScrollInfo returns the vertical scrollbar state.
func (g *Grid) VScrollInfo() ScrollInfo { return g.vInfo }

// HScrollInfo returns the horizontal scrollbar state.
func (g *Grid) HScrollInfo() ScrollInfo { return g.hInfo }

// Offsets returns the horizontal and vertical scroll offsets. Both are
// zero or negative.
func (g *Grid) Offsets() (h, v float32) { return g.hOffset, g.vOffset }

// extraRows is the number of displayed rows that do not fit on screen.
func (g *Grid) extraRows() int {
	return g.clipper().ExtraRows(g.height - g.m.labelBar)
}

// minVOffset is the furthest the row band may be scrolled up. The band
// does not move while every row fits.
func (g *Grid) minVOffset() float32 {
	extra := g.extraRows()
	if extra == 0 {
		return 0
	}
	return -(float32(extra)*g.m.row + vScrollSlack)
}

func (g *Grid) computeVInfo() ScrollInfo {
	extra := g.extraRows()
	si := ScrollInfo{Max: extra * 100, Page: extra*10 + 1}
	if extra != 0 {
		si.Pos = int(-(g.vOffset / (float32(extra)*g.m.row + vScrollSlack)) * float32(si.Max))
	}
	return si
}

func (g *Grid) computeHInfo() ScrollInfo {
	n := len(g.columns)
	si := ScrollInfo{Max: n * 100, Page: n * 10}
	if g.columnsWidth > 0 {
		si.Pos = int(-(g.hOffset / g.columnsWidth) * float32(si.Max))
	}
	return si
}

// updateVScroll recomputes the vertical scrollbar and repaints it if
// anything changed.
func (g *Grid) updateVScroll() {
	si := g.computeVInfo()
	if si != g.vInfo {
		g.vInfo = si
		g.invalidate(g.vScrollRect())
	}
}

// updateHScroll recomputes the horizontal scrollbar and repaints it if
// anything changed.
func (g *Grid) updateHScroll() {
	si := g.computeHInfo()
	if si != g.hInfo {
		g.hInfo = si
		g.invalidate(g.hScrollRect())
	}
}

func (g *Grid) updateScrollbars() {
	g.updateVScroll()
	g.updateHScroll()
}

// clampOffsets keeps both offsets within their ranges after the content
// or viewport shrank.
func (g *Grid) clampOffsets() {
	g.vOffset = clampf(g.vOffset, g.minVOffset(), 0)
	g.hOffset = clampf(g.hOffset, -g.columnsWidth, 0)
}

// setVOffset scrolls the row band. The label bar and scrollbars stay valid.
func (g *Grid) setVOffset(v float32) {
	v = clampf(v, g.minVOffset(), 0)
	if v == g.vOffset {
		return
	}
	g.vOffset = v
	g.invalidateRowsArea()
	g.updateVScroll()
}

// setHOffset scrolls the columns. Everything but the scrollbars repaints.
func (g *Grid) setHOffset(h float32) {
	h = clampf(h, -g.columnsWidth, 0)
	if h == g.hOffset {
		return
	}
	g.hOffset = h
	g.invalidateContent(g.bounds())
	g.updateHScroll()
}

// scrollLines scrolls vertically by n wheel lines; positive n moves
// towards the first row. Nothing scrolls while every row fits.
func (g *Grid) scrollLines(n int) {
	if g.extraRows() == 0 || n == 0 {
		return
	}
	g.setVOffset(g.vOffset + float32(n*vScrollStep))
}

// scrollColumns scrolls horizontally by n wheel lines; positive n moves
// towards the first column.
func (g *Grid) scrollColumns(n int) {
	if n == 0 {
		return
	}
	g.setHOffset(g.hOffset + float32(n*hScrollStep))
}

// scrollTo moves a scrollbar thumb to pos and scrolls the content to match.
func (g *Grid) scrollTo(axis Axis, pos int) {
	switch axis {
	case AxisVertical:
		extra := g.extraRows()
		if extra == 0 || g.vInfo.Max == 0 {
			return
		}
		frac := float32(pos) / float32(g.vInfo.Max)
		g.setVOffset(-float32(int(frac * (float32(extra)*g.m.row + vScrollSlack))))
	case AxisHorizontal:
		if g.hInfo.Max == 0 {
			return
		}
		frac := float32(pos) / float32(g.hInfo.Max)
		g.setHOffset(-float32(int(frac * g.columnsWidth)))
	}
}

// trackTo scrolls so the thumb of axis centers on the pointer.
func (g *Grid) trackTo(axis Axis, p Vec2) {
	switch axis {
	case AxisVertical:
		r := g.vScrollRect()
		g.scrollTo(axis, g.vInfo.positionAt(r.H, p.Y-r.Y))
	case AxisHorizontal:
		r := g.hScrollRect()
		g.scrollTo(axis, g.hInfo.positionAt(r.W, p.X-r.X))
	}
}

// scrollIntoView scrolls the least amount that shows slot fully.
func (g *Grid) scrollIntoView(slot int) {
	c := g.clipper()
	g.setVOffset(c.ScrollToItem(slot, g.vOffset, g.viewportHeight()))
}
