package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var (
	// ErrNoSelection is returned by SelectedRow when no valid row is selected.
	ErrNoSelection = errors.New("grid: no row is selected")

	// ErrNilHost is returned by New when no host is given.
	ErrNilHost = errors.New("grid: nil host")
)

// none marks an unset slot or column index.
const none = -1

// Grid is a virtualized, owner-drawn table.
//
// A Grid is not safe for concurrent use. Every method, including
// HandleEvent and Paint, must run on the host's UI goroutine.
type Grid struct {
	host    Host
	surface Surface
	store   *Store
	style   Style
	log     *slog.Logger
	name    string

	width, height float32
	dpi           float32
	m             metrics

	columns       []Column
	columnsWidth  float32 // Sum of column widths
	colorRules    map[string]ColorRule
	columnFilters []ColumnFilter

	vOffset, hOffset float32
	vInfo, hInfo     ScrollInfo

	state        State
	cursor       Cursor
	pointer      Vec2
	hovered      int // Slot under the pointer
	hoveredLabel int
	clickedLabel int
	selected     int

	dragColumn int
	dragStartX float32 // Scroll-adjusted pointer x at drag start
	dragWidth  float32 // Column width at drag start
	trackAxis  Axis

	dirty Region
}

// New creates a grid of the given size and acquires its paint surface.
// A surface failure is returned as is, wrapped; the grid is not usable.
func New(host Host, width, height int, opts ...Option) (*Grid, error) {
	if host == nil {
		return nil, ErrNilHost
	}

	g := &Grid{
		host:         host,
		style:        DefaultStyle(),
		log:          discardLogger(),
		width:        float32(width),
		height:       float32(height),
		colorRules:   make(map[string]ColorRule),
		hovered:      none,
		hoveredLabel: none,
		clickedLabel: none,
		selected:     none,
		dragColumn:   none,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.dpi = host.DPIScale()
	if g.dpi <= 0 {
		g.dpi = 1
	}
	g.m = scaledMetrics(g.style, g.dpi)

	surface, err := host.NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("grid: create surface: %w", err)
	}
	g.surface = surface
	g.store = newStore(g)

	g.updateScrollbars()
	g.invalidateAll()
	return g, nil
}

// Close releases the paint surface and detaches the grid from its store.
func (g *Grid) Close() {
	if g.surface != nil {
		g.surface.Release()
		g.surface = nil
	}
	g.store.detach(g)
}

// Name returns the name given with WithName.
func (g *Grid) Name() string { return g.name }

// Store returns the rows the grid displays. Mirrors share their source's store.
func (g *Grid) Store() *Store { return g.store }

// IsMirror reports whether the grid displays another grid's rows.
func (g *Grid) IsMirror() bool { return g.store.owner != g }

// mirrored reports whether g is a mirror, logging the refused row edit.
// Only the owner of a store changes its rows.
func (g *Grid) mirrored(op string) bool {
	if !g.IsMirror() {
		return false
	}
	g.log.Debug("grid: row edit ignored on mirror", "grid", g.name, "op", op, "source", g.store.owner.name)
	return true
}

// Size returns the grid size in pixels.
func (g *Grid) Size() (width, height int) {
	return int(g.width), int(g.height)
}

// DPIScale returns the scale factor the metrics were computed for.
func (g *Grid) DPIScale() float32 { return g.dpi }

// Style returns the grid style.
func (g *Grid) Style() Style { return g.style }

// SetStyle replaces the style and repaints everything.
func (g *Grid) SetStyle(style Style) {
	g.style = style
	g.m = scaledMetrics(style, g.dpi)
	g.clampOffsets()
	g.updateScrollbars()
	g.invalidateAll()
}

// Columns returns a copy of the column list.
func (g *Grid) Columns() []Column {
	return slices.Clone(g.columns)
}

// AddColumn appends a column. The width is raised to the minimum column
// width and then scaled by the DPI factor.
func (g *Grid) AddColumn(name string, width float32) {
	w := float32(int(maxf(width, g.style.MinColumnWidth) * g.dpi))
	g.columns = append(g.columns, Column{Name: name, Width: w, NextSort: Ascending})
	g.columnsWidth += w

	g.updateHScroll()
	g.invalidateAll()
}

// AddRow appends a copy of cells and displays it, whatever filter is
// active. Mirrors ignore row edits; the source grid owns the rows.
func (g *Grid) AddRow(cells []string) {
	if g.mirrored("add row") {
		return
	}
	slot := g.store.append(cells)
	g.store.publish(storeChange{kind: changeAppend, slot: slot})
}

// RemoveDisplayedRow removes the row displayed at slot.
// Invalid slots are ignored.
func (g *Grid) RemoveDisplayedRow(slot int) {
	if g.mirrored("remove row") {
		return
	}
	if slot < 0 || slot >= g.store.DisplayedLen() {
		return
	}
	size := g.store.DisplayedLen()
	g.store.removeSlot(slot)
	g.log.Debug("grid: row removed", "grid", g.name, "slot", slot, "rows", g.store.Len())
	g.store.publish(storeChange{kind: changeRemove, slot: slot, size: size})
}

// RemoveRow removes a row by id, whether or not it is displayed.
// Invalid ids are ignored.
func (g *Grid) RemoveRow(id int) {
	if g.mirrored("remove row") {
		return
	}
	if id < 0 || id >= g.store.Len() {
		return
	}
	slot := g.store.slotOf(id)
	if slot < 0 {
		slot = g.store.show(id)
	}
	g.RemoveDisplayedRow(slot)
}

// ApplyFilter displays only the rows that match needle.
// Hover, label click and selection are reset.
func (g *Grid) ApplyFilter(needle string) {
	g.store.filter(needle)
	g.log.Debug("grid: filter applied", "grid", g.name, "needle", needle, "shown", g.store.DisplayedLen())
	g.store.publish(storeChange{kind: changeReorder})
}

// SortByColumn orders the displayed rows by the text of column col and
// flips the column's next sort direction. Rows themselves are not moved.
// Invalid columns are ignored.
func (g *Grid) SortByColumn(col int) {
	if col < 0 || col >= len(g.columns) {
		return
	}
	dir := g.columns[col].NextSort
	g.store.sort(col, dir)
	g.columns[col].NextSort = dir.toggle()
	g.log.Debug("grid: sorted", "grid", g.name, "column", col, "direction", dir.String())
	g.store.publish(storeChange{kind: changeReorder})
}

// SetColorRule paints cells whose text equals word in color. The rule
// covers column col, or every column for AllColumns. A later rule for the
// same word replaces the earlier one.
func (g *Grid) SetColorRule(word string, color uint32, col int) {
	g.colorRules[word] = ColorRule{Color: color, Column: col}
	g.invalidateRowsArea()
}

// wordColor returns the text color for a cell.
func (g *Grid) wordColor(text string, col int) uint32 {
	if r, ok := g.colorRules[text]; ok && r.appliesTo(col) {
		return r.Color
	}
	return g.style.TextColor
}

// FilterOutColumnContent makes rows whose cell at col equals word not
// count as a valid selection. A word is only registered once.
func (g *Grid) FilterOutColumnContent(col int, word string) {
	if col < 0 || col >= len(g.columns) {
		return
	}
	for _, f := range g.columnFilters {
		if f.Word == word {
			return
		}
	}
	g.columnFilters = append(g.columnFilters, ColumnFilter{Column: col, Word: word})
}

// RowObeysColumnFilters reports whether the row at slot passes every
// column filter. Invalid slots pass.
func (g *Grid) RowObeysColumnFilters(slot int) bool {
	id, ok := g.store.rowAt(slot)
	if !ok {
		return true
	}
	row := g.store.rows[id]
	for _, f := range g.columnFilters {
		if f.matches(row) {
			return false
		}
	}
	return true
}

// Clear removes every row. A mirror is detached from its source instead
// and left with an empty store of its own, so the source keeps its rows.
func (g *Grid) Clear() {
	if g.IsMirror() {
		g.store.detach(g)
		g.log.Debug("grid: mirror detached", "grid", g.name, "source", g.store.owner.name)
		g.store = newStore(g)
		g.storeChanged(storeChange{kind: changeClear})
		return
	}
	if g.store.Len() == 0 {
		return
	}
	g.store.reset()
	g.store.publish(storeChange{kind: changeClear})
}

// Mirror drops the grid's own rows and displays src's rows and index
// instead. Columns are copied once; columns added to src later do not
// appear here. Selection, hover and scroll stay per grid.
func (g *Grid) Mirror(src *Grid) {
	if src == nil || src == g || src.store == g.store {
		return
	}
	g.UnselectSelectedRow()
	g.store.detach(g)

	g.store = src.store
	g.store.attach(g)
	g.columns = slices.Clone(src.columns)
	g.columnsWidth = src.columnsWidth
	g.log.Debug("grid: mirroring", "grid", g.name, "source", src.name, "rows", g.store.Len())

	g.hovered = none
	g.hoveredLabel = none
	g.clickedLabel = none
	g.vOffset, g.hOffset = 0, 0
	g.setState(Idle)
	g.updateScrollbars()
	g.invalidateAll()
}

// SelectedRow returns a copy of the selected row.
func (g *Grid) SelectedRow() ([]string, error) {
	if !g.IsSomeRowSelected() {
		return nil, ErrNoSelection
	}
	return slices.Clone(g.store.rows[g.store.shown[g.selected]]), nil
}

// SelectedSlot returns the selected slot, or -1.
func (g *Grid) SelectedSlot() int { return g.selected }

// HoveredSlot returns the slot under the pointer, or -1.
func (g *Grid) HoveredSlot() int { return g.hovered }

// IsSomeRowSelected reports whether a displayed row that passes the
// column filters is selected.
func (g *Grid) IsSomeRowSelected() bool {
	return g.selected >= 0 && g.selected < g.store.DisplayedLen() && g.RowObeysColumnFilters(g.selected)
}

// UnselectSelectedRow clears the selection and notifies the host.
func (g *Grid) UnselectSelectedRow() {
	if g.selected == none {
		return
	}
	g.invalidateRow(g.selected)
	g.selected = none
	g.notify(RowUnselected, none)
}

// SelectSlot selects the row at slot and notifies the host.
// Invalid slots are ignored.
func (g *Grid) SelectSlot(slot int) {
	if slot < 0 || slot >= g.store.DisplayedLen() {
		return
	}
	g.selectSlot(slot)
}

// CellContent returns the text at (slot, col), or "" when out of range.
func (g *Grid) CellContent(slot, col int) string {
	s, _ := g.store.cell(slot, col)
	return s
}

// SetCellContent overwrites the text at (slot, col).
// Out of range positions are ignored.
func (g *Grid) SetCellContent(slot, col int, text string) {
	if g.mirrored("set cell") {
		return
	}
	if g.store.setCell(slot, col, text) {
		g.store.publish(storeChange{kind: changeCell, slot: slot})
	}
}

// SetDisplayedRowContent overwrites the cells of the row at slot that
// cells overlaps. Extra cells on either side are left alone.
func (g *Grid) SetDisplayedRowContent(slot int, cells []string) {
	if g.mirrored("set row") {
		return
	}
	if g.store.setRow(slot, cells) {
		g.store.publish(storeChange{kind: changeCell, slot: slot})
	}
}

// DisplayedRowCount returns the number of displayed slots.
func (g *Grid) DisplayedRowCount() int { return g.store.DisplayedLen() }

// RowCount returns the number of rows, displayed or not.
func (g *Grid) RowCount() int { return g.store.Len() }

// notify posts a selection notification to the host.
func (g *Grid) notify(kind NotificationKind, slot int) {
	g.host.Notify(Notification{Kind: kind, Grid: g, Slot: slot})
}

// selectSlot moves the selection to slot, notifying the transition.
func (g *Grid) selectSlot(slot int) {
	if slot == g.selected {
		return
	}
	if g.selected != none {
		g.invalidateRow(g.selected)
		g.notify(RowUnselected, none)
	}
	g.selected = slot
	if slot != none {
		g.invalidateRow(slot)
		g.notify(RowSelected, slot)
	}
}

// storeChanged revalidates per-view state after the shared store changed.
func (g *Grid) storeChanged(c storeChange) {
	switch c.kind {
	case changeAppend:
		g.invalidateRow(c.slot)
		g.updateVScroll()

	case changeRemove:
		g.rowRemoved(c.slot, c.size)

	case changeReorder:
		g.hovered = none
		g.hoveredLabel = none
		g.clickedLabel = none
		if g.state != DraggingColumnBorder && g.state != ScrollTracking {
			g.setState(Idle)
		}
		g.UnselectSelectedRow()
		g.clampOffsets()
		g.updateVScroll()
		g.invalidateRowsArea()

	case changeCell:
		g.invalidateRow(c.slot)

	case changeClear:
		g.UnselectSelectedRow()
		g.hovered = none
		g.vOffset = 0
		g.updateVScroll()
		g.invalidateRowsArea()
	}
}

// rowRemoved fixes selection and hover after slot was removed from an
// index that held size slots.
func (g *Grid) rowRemoved(slot, size int) {
	for s := slot; s < size; s++ {
		g.invalidateRow(s)
	}

	n := size - 1
	if g.hovered >= n {
		g.hovered = none
	}

	switch {
	case g.selected == none:
	case n == 0:
		g.UnselectSelectedRow()
	case g.selected == slot:
		// The next row slides into the removed slot; at the bottom the
		// selection moves up to the new last row.
		if slot == n {
			g.selected = n - 1
		}
		g.invalidateRow(g.selected)
		g.notify(RowSelected, g.selected)
	case g.selected > slot:
		g.selected--
	}

	g.clampOffsets()
	g.updateVScroll()
}
