package grid_test

import (
	"errors"
	"slices"
	"sort"
	"testing"

	"github.com/staffledger/grid"
)

// recordingSurface keeps the primitives of the last paint.
type recordingSurface struct {
	renders       int
	ops           []grid.Op
	width, height int
	released      bool
	err           error
}

func (s *recordingSurface) Render(dl *grid.DrawList) error {
	s.renders++
	s.ops = append(s.ops[:0], dl.Ops...)
	return s.err
}

func (s *recordingSurface) FontTextureID() uint32 { return 1 }

func (s *recordingSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *recordingSurface) Release() { s.released = true }

// mockHost records everything a grid asks of it.
type mockHost struct {
	grid.BaseHost
	surface    *recordingSurface
	surfaceErr error
	notes      []grid.Notification
	invalid    []grid.Rect
	cursor     grid.Cursor
	clipboard  string
}

func (h *mockHost) NewSurface(width, height int) (grid.Surface, error) {
	if h.surfaceErr != nil {
		return nil, h.surfaceErr
	}
	h.surface = &recordingSurface{width: width, height: height}
	return h.surface, nil
}

func (h *mockHost) Invalidate(_ *grid.Grid, r grid.Rect) { h.invalid = append(h.invalid, r) }
func (h *mockHost) SetCursor(c grid.Cursor)              { h.cursor = c }
func (h *mockHost) Notify(n grid.Notification)           { h.notes = append(h.notes, n) }
func (h *mockHost) GetText() string                      { return h.clipboard }
func (h *mockHost) SetText(text string)                  { h.clipboard = text }

func (h *mockHost) kinds() []grid.NotificationKind {
	out := make([]grid.NotificationKind, len(h.notes))
	for i, n := range h.notes {
		out[i] = n.Kind
	}
	return out
}

// Geometry at scale 1: label bar 30, rows 24, scrollbars 20.
const (
	labelBar  = 30
	rowHeight = 24
)

func rowY(slot int) float32 { return labelBar + float32(slot)*rowHeight + rowHeight/2 }

// newTestGrid builds a 400x300 grid with columns of 100 and 80 pixels.
func newTestGrid(t *testing.T, rows ...[]string) (*grid.Grid, *mockHost) {
	t.Helper()
	host := &mockHost{}
	g, err := grid.New(host, 400, 300)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	g.AddColumn("Name", 100)
	g.AddColumn("State", 80)
	for _, r := range rows {
		g.AddRow(r)
	}
	return g, host
}

func click(g *grid.Grid, x, y float32) {
	g.HandleEvent(grid.PointerMove{X: x, Y: y})
	g.HandleEvent(grid.PointerDown{X: x, Y: y, Button: grid.MouseButtonLeft})
	g.HandleEvent(grid.PointerUp{X: x, Y: y, Button: grid.MouseButtonLeft})
}

func names(g *grid.Grid) []string {
	out := make([]string, g.DisplayedRowCount())
	for slot := range out {
		out[slot] = g.CellContent(slot, 0)
	}
	return out
}

func people() [][]string {
	return [][]string{
		{"bravo", "active"},
		{"alpha", "closed"},
		{"charlie", "active"},
	}
}

func TestNewFailsWithoutSurface(t *testing.T) {
	boom := errors.New("out of video memory")
	_, err := grid.New(&mockHost{surfaceErr: boom}, 100, 100)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped surface error, got %v", err)
	}

	if _, err := grid.New(nil, 100, 100); !errors.Is(err, grid.ErrNilHost) {
		t.Errorf("expected ErrNilHost, got %v", err)
	}
}

func TestCloseReleasesSurface(t *testing.T) {
	g, host := newTestGrid(t)
	g.Close()
	if !host.surface.released {
		t.Error("expected surface to be released")
	}
}

func TestAddColumnMinimumWidth(t *testing.T) {
	g, _ := newTestGrid(t)
	g.AddColumn("Tiny", 5)

	cols := g.Columns()
	if cols[2].Width != 30 {
		t.Errorf("expected width 30, got %v", cols[2].Width)
	}
}

func TestAddColumnScalesByDPI(t *testing.T) {
	host := &mockHost{BaseHost: grid.BaseHost{Scale: 2}}
	g, err := grid.New(host, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	g.AddColumn("A", 10)
	g.AddColumn("B", 50)

	cols := g.Columns()
	if cols[0].Width != 60 || cols[1].Width != 100 {
		t.Errorf("expected widths 60 and 100, got %v and %v", cols[0].Width, cols[1].Width)
	}

	g.HandleEvent(grid.DPIChanged{Scale: 1})
	cols = g.Columns()
	if cols[0].Width != 30 || cols[1].Width != 50 {
		t.Errorf("after rescale expected 30 and 50, got %v and %v", cols[0].Width, cols[1].Width)
	}
}

func TestClickSelectsRow(t *testing.T) {
	g, host := newTestGrid(t, people()...)

	click(g, 50, rowY(1))
	if g.SelectedSlot() != 1 {
		t.Fatalf("expected slot 1 selected, got %d", g.SelectedSlot())
	}
	row, err := g.SelectedRow()
	if err != nil || row[0] != "alpha" {
		t.Errorf("SelectedRow() = %v, %v", row, err)
	}
	if got := host.kinds(); !slices.Equal(got, []grid.NotificationKind{grid.RowSelected}) {
		t.Errorf("unexpected notifications %v", got)
	}
	if host.notes[0].Slot != 1 || host.notes[0].Grid != g {
		t.Errorf("unexpected notification payload %+v", host.notes[0])
	}

	// Clicking the selected row again does nothing.
	click(g, 50, rowY(1))
	if len(host.notes) != 1 {
		t.Errorf("expected no new notification, got %v", host.kinds())
	}

	// Another row: unselect then select.
	click(g, 50, rowY(2))
	want := []grid.NotificationKind{grid.RowSelected, grid.RowUnselected, grid.RowSelected}
	if got := host.kinds(); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestClickBelowRowsDeselects(t *testing.T) {
	g, host := newTestGrid(t, people()...)
	click(g, 50, rowY(0))
	click(g, 50, rowY(6))

	if g.IsSomeRowSelected() {
		t.Error("expected no selection")
	}
	if _, err := g.SelectedRow(); !errors.Is(err, grid.ErrNoSelection) {
		t.Errorf("expected ErrNoSelection, got %v", err)
	}
	if got := host.kinds(); !slices.Equal(got, []grid.NotificationKind{grid.RowSelected, grid.RowUnselected}) {
		t.Errorf("unexpected notifications %v", got)
	}
}

func TestLabelClickSortsAndClearsSelection(t *testing.T) {
	g, host := newTestGrid(t, people()...)
	click(g, 50, rowY(0))

	click(g, 50, 10)

	if got := names(g); !slices.Equal(got, []string{"alpha", "bravo", "charlie"}) {
		t.Errorf("expected ascending order, got %v", got)
	}
	if g.IsSomeRowSelected() {
		t.Error("sort should clear the selection")
	}
	if got := host.kinds(); !slices.Equal(got, []grid.NotificationKind{grid.RowSelected, grid.RowUnselected}) {
		t.Errorf("unexpected notifications %v", got)
	}

	click(g, 50, 10)
	if got := names(g); !slices.Equal(got, []string{"charlie", "bravo", "alpha"}) {
		t.Errorf("expected descending order, got %v", got)
	}
}

func TestLabelPressStates(t *testing.T) {
	g, _ := newTestGrid(t, people()...)

	g.HandleEvent(grid.PointerMove{X: 50, Y: 10})
	if g.State() != grid.HoveringColumnLabel {
		t.Fatalf("expected hovering label, got %v", g.State())
	}
	g.HandleEvent(grid.PointerDown{X: 50, Y: 10, Button: grid.MouseButtonLeft})
	if g.State() != grid.AwaitingSortClick {
		t.Fatalf("expected awaiting sort click, got %v", g.State())
	}

	// Leaving the label cancels the click.
	g.HandleEvent(grid.PointerMove{X: 140, Y: 10})
	g.HandleEvent(grid.PointerUp{X: 140, Y: 10, Button: grid.MouseButtonLeft})
	if got := names(g); !slices.Equal(got, []string{"bravo", "alpha", "charlie"}) {
		t.Errorf("expected no sort, got %v", got)
	}
}

func TestColumnResizeByDragging(t *testing.T) {
	g, host := newTestGrid(t, people()...)

	g.HandleEvent(grid.PointerMove{X: 103, Y: 10})
	if g.State() != grid.ResizeArmed {
		t.Fatalf("expected resize armed, got %v", g.State())
	}
	if host.cursor != grid.CursorResizeEW {
		t.Error("expected resize cursor")
	}

	g.HandleEvent(grid.PointerDown{X: 103, Y: 10, Button: grid.MouseButtonLeft})
	g.HandleEvent(grid.PointerMove{X: 143, Y: 200})
	if g.State() != grid.DraggingColumnBorder {
		t.Fatalf("expected dragging, got %v", g.State())
	}
	if w := g.Columns()[0].Width; w != 140 {
		t.Errorf("expected width 140, got %v", w)
	}

	g.HandleEvent(grid.PointerMove{X: -200, Y: 10})
	if w := g.Columns()[0].Width; w != 30 {
		t.Errorf("expected minimum width 30, got %v", w)
	}

	g.HandleEvent(grid.PointerUp{X: -200, Y: 10, Button: grid.MouseButtonLeft})
	if g.State() == grid.DraggingColumnBorder {
		t.Error("release should end the drag")
	}
	if host.cursor != grid.CursorArrow {
		t.Error("expected arrow cursor after leaving the border")
	}
}

func TestPressNearBorderDoesNotSort(t *testing.T) {
	g, _ := newTestGrid(t, people()...)
	click(g, 99, 10)

	if got := names(g); !slices.Equal(got, []string{"bravo", "alpha", "charlie"}) {
		t.Errorf("expected no sort, got %v", got)
	}
}

func TestPointerLeaveResets(t *testing.T) {
	g, host := newTestGrid(t, people()...)
	g.HandleEvent(grid.PointerMove{X: 50, Y: rowY(1)})
	if g.HoveredSlot() != 1 {
		t.Fatalf("expected hovered slot 1, got %d", g.HoveredSlot())
	}

	g.HandleEvent(grid.PointerMove{X: 103, Y: 10})
	g.HandleEvent(grid.PointerDown{X: 103, Y: 10, Button: grid.MouseButtonLeft})
	g.HandleEvent(grid.PointerLeave{})

	if g.State() != grid.Idle || g.HoveredSlot() != -1 {
		t.Errorf("expected idle without hover, got %v / %d", g.State(), g.HoveredSlot())
	}
	if host.cursor != grid.CursorArrow {
		t.Error("expected arrow cursor")
	}
}

func TestKeyboardSelection(t *testing.T) {
	g, host := newTestGrid(t, people()...)

	g.HandleEvent(grid.KeyPress{Key: grid.KeyUp})
	if g.SelectedSlot() != 2 {
		t.Fatalf("Up without selection should select the last row, got %d", g.SelectedSlot())
	}
	g.HandleEvent(grid.KeyPress{Key: grid.KeyDown})
	if g.SelectedSlot() != 2 {
		t.Errorf("Down at the bottom should not move, got %d", g.SelectedSlot())
	}

	g.UnselectSelectedRow()
	g.HandleEvent(grid.KeyPress{Key: grid.KeyDown})
	if g.SelectedSlot() != 0 {
		t.Fatalf("Down without selection should select the first row, got %d", g.SelectedSlot())
	}
	n := len(host.notes)
	g.HandleEvent(grid.KeyPress{Key: grid.KeyUp})
	if g.SelectedSlot() != 0 || len(host.notes) != n {
		t.Errorf("Up at the top should not move or notify")
	}

	g.HandleEvent(grid.KeyPress{Key: grid.KeyDown})
	if g.SelectedSlot() != 1 {
		t.Errorf("expected slot 1, got %d", g.SelectedSlot())
	}
	last := host.notes[len(host.notes)-1]
	if last.Kind != grid.RowSelected || last.Slot != 1 {
		t.Errorf("expected row-selected for slot 1, got %+v", last)
	}
}

func TestKeyboardScrollsSelectionIntoView(t *testing.T) {
	g, _ := newTestGrid(t)
	for range 40 {
		g.AddRow([]string{"x"})
	}
	g.HandleEvent(grid.KeyPress{Key: grid.KeyUp})

	_, v := g.Offsets()
	if v >= 0 {
		t.Errorf("expected the band to scroll to the last row, offset %v", v)
	}
	bottom := labelBar + 40*rowHeight + v
	if bottom > 300-20-1 {
		t.Errorf("last row ends at %v, below the viewport", bottom)
	}
}

func TestRemovingSelectedLastRowMovesSelection(t *testing.T) {
	g, host := newTestGrid(t, []string{"r0"}, []string{"r1"}, []string{"r2"}, []string{"r3"})
	g.HandleEvent(grid.KeyPress{Key: grid.KeyUp})
	host.notes = nil

	g.RemoveDisplayedRow(3)
	if g.SelectedSlot() != 2 {
		t.Errorf("expected selection on new last slot, got %d", g.SelectedSlot())
	}
	if len(host.notes) != 1 || host.notes[0].Kind != grid.RowSelected || host.notes[0].Slot != 2 {
		t.Errorf("expected one row-selected for slot 2, got %+v", host.notes)
	}
}

func TestRemovingEverythingClearsSelection(t *testing.T) {
	g, host := newTestGrid(t, []string{"only"})
	g.SelectSlot(0)
	host.notes = nil

	g.RemoveRow(0)
	if g.IsSomeRowSelected() || g.SelectedSlot() != -1 {
		t.Error("expected selection cleared")
	}
	if got := host.kinds(); !slices.Equal(got, []grid.NotificationKind{grid.RowUnselected}) {
		t.Errorf("unexpected notifications %v", got)
	}
}

func TestRemovingRowAboveSelectionKeepsRow(t *testing.T) {
	g, _ := newTestGrid(t, []string{"r0"}, []string{"r1"}, []string{"r2"})
	g.SelectSlot(2)
	g.RemoveDisplayedRow(0)

	row, err := g.SelectedRow()
	if err != nil || row[0] != "r2" {
		t.Errorf("expected r2 still selected, got %v, %v", row, err)
	}
}

func TestFilterResetsSelection(t *testing.T) {
	g, host := newTestGrid(t, people()...)
	g.SelectSlot(0)
	g.ApplyFilter("active")

	if g.IsSomeRowSelected() {
		t.Error("filter should clear the selection")
	}
	if got := names(g); !slices.Equal(got, []string{"bravo", "charlie"}) {
		t.Errorf("got %v", got)
	}
	if last := host.notes[len(host.notes)-1]; last.Kind != grid.RowUnselected {
		t.Errorf("expected row-unselected, got %v", last.Kind)
	}
}

func TestColumnFilterInvalidatesSelection(t *testing.T) {
	g, _ := newTestGrid(t, people()...)
	g.FilterOutColumnContent(1, "closed")
	g.FilterOutColumnContent(0, "closed")

	g.SelectSlot(1)
	if g.IsSomeRowSelected() {
		t.Error("row with a filtered-out cell should not count as selected")
	}
	if g.RowObeysColumnFilters(1) || !g.RowObeysColumnFilters(0) {
		t.Error("unexpected column filter result")
	}

	g.SelectSlot(0)
	if !g.IsSomeRowSelected() {
		t.Error("expected a valid selection")
	}
}

func TestMirrorSharesRows(t *testing.T) {
	a, _ := newTestGrid(t, people()...)
	b, bHost := newTestGrid(t, []string{"own"})

	b.Mirror(a)
	if !b.IsMirror() || b.RowCount() != 3 {
		t.Fatalf("expected mirror with 3 rows, got %d", b.RowCount())
	}

	a.AddRow([]string{"delta", "active"})
	if b.DisplayedRowCount() != 4 {
		t.Errorf("mirror should see new rows, got %d", b.DisplayedRowCount())
	}

	a.SortByColumn(0)
	if got := names(b); !slices.Equal(got, []string{"alpha", "bravo", "charlie", "delta"}) {
		t.Errorf("mirror should share the order, got %v", got)
	}

	// Selection stays per grid.
	b.SelectSlot(3)
	if a.IsSomeRowSelected() {
		t.Error("selection leaked into the source")
	}

	// Removing through the source revalidates the mirror.
	a.RemoveDisplayedRow(0)
	if b.SelectedSlot() != 2 {
		t.Errorf("expected mirror selection to follow its row, got %d", b.SelectedSlot())
	}
	if last := bHost.notes[len(bHost.notes)-1]; last.Kind != grid.RowSelected {
		t.Errorf("unexpected last notification %v", last.Kind)
	}
}

func TestMirrorCannotEditSourceRows(t *testing.T) {
	a, _ := newTestGrid(t, people()...)
	b, _ := newTestGrid(t)
	b.Mirror(a)

	b.RemoveRow(0)
	b.RemoveDisplayedRow(1)
	b.AddRow([]string{"intruder", "active"})
	b.SetCellContent(0, 0, "renamed")
	b.SetDisplayedRowContent(1, []string{"x", "y"})

	if a.RowCount() != 3 || b.RowCount() != 3 {
		t.Fatalf("expected 3 rows on both grids, got %d and %d", a.RowCount(), b.RowCount())
	}
	if got := names(a); !slices.Equal(got, []string{"bravo", "alpha", "charlie"}) {
		t.Errorf("source rows changed through the mirror: %v", got)
	}
	if got := a.CellContent(1, 1); got != "closed" {
		t.Errorf("expected closed, got %q", got)
	}

	// The source still edits, and the mirror sees it.
	a.SetCellContent(0, 0, "renamed")
	if got := b.CellContent(0, 0); got != "renamed" {
		t.Errorf("mirror should see source edits, got %q", got)
	}
}

func TestAddRowCopiesCells(t *testing.T) {
	g, _ := newTestGrid(t)
	cells := []string{"alpha", "active"}
	g.AddRow(cells)

	g.SetCellContent(0, 0, "omega")
	if cells[0] != "alpha" {
		t.Errorf("caller slice was modified: %v", cells)
	}
	cells[1] = "closed"
	if got := g.CellContent(0, 1); got != "active" {
		t.Errorf("grid followed the caller slice, got %q", got)
	}
}

func TestMirrorClearLeavesSource(t *testing.T) {
	a, _ := newTestGrid(t, people()...)
	b, _ := newTestGrid(t)
	b.Mirror(a)

	b.Clear()
	if a.RowCount() != 3 {
		t.Errorf("source lost rows: %d", a.RowCount())
	}
	if b.RowCount() != 0 || b.IsMirror() {
		t.Errorf("expected detached empty mirror, got %d rows", b.RowCount())
	}

	a.AddRow([]string{"e"})
	if b.RowCount() != 0 {
		t.Error("detached grid should not see new source rows")
	}
}

func TestClearOwnerClearsMirrors(t *testing.T) {
	a, _ := newTestGrid(t, people()...)
	b, _ := newTestGrid(t)
	b.Mirror(a)

	a.Clear()
	if a.RowCount() != 0 || b.RowCount() != 0 {
		t.Errorf("expected both empty, got %d and %d", a.RowCount(), b.RowCount())
	}
}

func TestMirrorCopiesColumnsOnce(t *testing.T) {
	a, _ := newTestGrid(t)
	b, _ := newTestGrid(t)
	b.Mirror(a)
	a.AddColumn("Late", 50)

	if len(b.Columns()) != 2 {
		t.Errorf("expected 2 columns on the mirror, got %d", len(b.Columns()))
	}
}

func TestColorRuleLastWriteWins(t *testing.T) {
	host := &mockHost{}
	g, err := grid.New(host, 400, 300)
	if err != nil {
		t.Fatal(err)
	}
	g.AddColumn("A", 100)
	g.AddColumn("B", 100)
	g.AddColumn("C", 100)
	g.AddRow([]string{"X", "X", "X"})

	red, blue := grid.RGB(255, 0, 0), grid.RGB(0, 0, 255)
	g.SetColorRule("X", red, grid.AllColumns)
	g.SetColorRule("X", blue, 2)
	if err := g.PaintAll(); err != nil {
		t.Fatal(err)
	}

	var cells []grid.Op
	for _, op := range host.surface.ops {
		if op.Kind == grid.OpText && op.Text == "X" {
			cells = append(cells, op)
		}
	}
	if len(cells) != 3 {
		t.Fatalf("expected 3 cell texts, got %d", len(cells))
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Min.X < cells[j].Min.X })

	want := []uint32{grid.ColorBlack, grid.ColorBlack, blue}
	for i, op := range cells {
		if op.Color != want[i] {
			t.Errorf("column %d: expected color %08x, got %08x", i, want[i], op.Color)
		}
	}
}

func TestCopySelectedRow(t *testing.T) {
	g, host := newTestGrid(t, people()...)
	g.SelectSlot(1)
	g.HandleEvent(grid.KeyPress{Key: grid.KeyC, Mods: grid.ModCtrl})

	if host.clipboard != "alpha\tclosed" {
		t.Errorf("unexpected clipboard %q", host.clipboard)
	}
}

func TestResizeRefitsSurface(t *testing.T) {
	g, host := newTestGrid(t, people()...)
	if err := g.Paint(); err != nil {
		t.Fatal(err)
	}

	g.HandleEvent(grid.Resize{Width: 640, Height: 480})
	if host.surface.width != 640 || host.surface.height != 480 {
		t.Errorf("surface not refitted: %dx%d", host.surface.width, host.surface.height)
	}
	if w, h := g.Size(); w != 640 || h != 480 {
		t.Errorf("unexpected size %dx%d", w, h)
	}
	if !g.NeedsPaint() {
		t.Error("resize should repaint")
	}
}

func TestPaintErrorIsWrapped(t *testing.T) {
	g, host := newTestGrid(t)
	boom := errors.New("context lost")
	host.surface.err = boom

	if err := g.PaintAll(); !errors.Is(err, boom) {
		t.Errorf("expected wrapped render error, got %v", err)
	}
}
