package grid

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// changeKind tags a storeChange.
type changeKind int

const (
	changeAppend  changeKind = iota + 1 // a row was appended at slot
	changeRemove                        // slot was removed; size is the displayed count before
	changeReorder                       // the displayed index was rebuilt or sorted
	changeCell                          // the row at slot was edited
	changeClear                         // every row is gone
)

// storeChange is published to every grid attached to a Store.
type storeChange struct {
	kind changeKind
	slot int
	size int
}

// Store holds rows of text cells and the displayed index over them.
// A Store is shared by the grid that created it and by every grid
// mirroring that grid.
//
// Row ids are positions in the store. Removing a row relabels every id
// after it, and the displayed index is relabelled to match, so every
// displayed entry always addresses a live row.
type Store struct {
	rows  [][]string
	shown []int

	owner *Grid
	views []*Grid
}

func newStore(owner *Grid) *Store {
	s := &Store{owner: owner}
	s.attach(owner)
	return s
}

// Len returns the number of rows.
func (s *Store) Len() int { return len(s.rows) }

// DisplayedLen returns the number of displayed slots.
func (s *Store) DisplayedLen() int { return len(s.shown) }

// Row returns a copy of the row with the given id, or nil.
func (s *Store) Row(id int) []string {
	if id < 0 || id >= len(s.rows) {
		return nil
	}
	return slices.Clone(s.rows[id])
}

// Index returns a copy of the displayed index: slot to row id.
func (s *Store) Index() []int {
	return slices.Clone(s.shown)
}

// Owner returns the grid that created the store.
func (s *Store) Owner() *Grid { return s.owner }

// rowAt resolves a slot to a row id.
func (s *Store) rowAt(slot int) (int, bool) {
	if slot < 0 || slot >= len(s.shown) {
		return 0, false
	}
	return s.shown[slot], true
}

// cell returns the text at (slot, col).
func (s *Store) cell(slot, col int) (string, bool) {
	id, ok := s.rowAt(slot)
	if !ok || col < 0 || col >= len(s.rows[id]) {
		return "", false
	}
	return s.rows[id][col], true
}

// append adds a copy of cells and displays it. Returns its slot.
func (s *Store) append(cells []string) int {
	s.shown = append(s.shown, len(s.rows))
	s.rows = append(s.rows, slices.Clone(cells))
	return len(s.shown) - 1
}

// filter rebuilds the displayed index in row order. A row qualifies when
// the needle is empty, when the folded needle occurs in a folded cell, or
// when a non-empty folded cell occurs in the folded needle.
func (s *Store) filter(needle string) {
	s.shown = s.shown[:0]
	if needle == "" {
		for id := range s.rows {
			s.shown = append(s.shown, id)
		}
		return
	}

	fold := cases.Fold()
	folded := fold.String(needle)
	for id, row := range s.rows {
		if rowMatches(row, folded, fold) {
			s.shown = append(s.shown, id)
		}
	}
}

func rowMatches(row []string, needle string, fold cases.Caser) bool {
	for _, cell := range row {
		c := fold.String(cell)
		if strings.Contains(c, needle) || (c != "" && strings.Contains(needle, c)) {
			return true
		}
	}
	return false
}

// sort orders the displayed index by the text in column col.
// Rows without that column sort as empty text.
func (s *Store) sort(col int, dir SortDirection) {
	text := func(id int) string {
		if col < len(s.rows[id]) {
			return s.rows[id][col]
		}
		return ""
	}
	slices.SortStableFunc(s.shown, func(a, b int) int {
		c := strings.Compare(text(a), text(b))
		if dir == Descending {
			return -c
		}
		return c
	})
}

// removeSlot deletes the row displayed at slot and relabels the index.
func (s *Store) removeSlot(slot int) {
	id := s.shown[slot]
	for i, v := range s.shown {
		if v > id {
			s.shown[i] = v - 1
		}
	}
	s.rows = slices.Delete(s.rows, id, id+1)
	s.shown = slices.Delete(s.shown, slot, slot+1)
}

// slotOf returns the slot displaying row id, or -1.
func (s *Store) slotOf(id int) int {
	return slices.Index(s.shown, id)
}

// show displays row id at a new last slot and returns that slot.
func (s *Store) show(id int) int {
	s.shown = append(s.shown, id)
	return len(s.shown) - 1
}

// setCell overwrites one cell. Returns false when (slot, col) is invalid.
func (s *Store) setCell(slot, col int, text string) bool {
	if _, ok := s.cell(slot, col); !ok {
		return false
	}
	s.rows[s.shown[slot]][col] = text
	return true
}

// setRow overwrites the overlapping prefix of the row at slot.
func (s *Store) setRow(slot int, cells []string) bool {
	id, ok := s.rowAt(slot)
	if !ok {
		return false
	}
	copy(s.rows[id], cells)
	return true
}

// reset drops every row.
func (s *Store) reset() {
	s.rows = nil
	s.shown = nil
}

func (s *Store) attach(g *Grid) {
	if !slices.Contains(s.views, g) {
		s.views = append(s.views, g)
	}
}

func (s *Store) detach(g *Grid) {
	s.views = slices.DeleteFunc(s.views, func(v *Grid) bool { return v == g })
}

// publish lets every attached grid revalidate its per-view state.
func (s *Store) publish(c storeChange) {
	for _, g := range slices.Clone(s.views) {
		g.storeChanged(c)
	}
}
