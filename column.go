package grid

// SortDirection is the order the next sort on a column will use.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// toggle returns the opposite direction.
func (d SortDirection) toggle() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Column describes one column of a grid.
type Column struct {
	Name     string
	Width    float32 // Pixels, already DPI-scaled
	NextSort SortDirection
}

// AllColumns makes a ColorRule apply to every column.
const AllColumns = -1

// ColorRule paints cells whose text equals a word in Color.
type ColorRule struct {
	Color  uint32
	Column int // Column index or AllColumns
}

// appliesTo reports whether the rule covers column col.
func (r ColorRule) appliesTo(col int) bool {
	return r.Column == AllColumns || r.Column == col
}

// ColumnFilter marks rows whose cell at Column equals Word as not
// selectable.
type ColumnFilter struct {
	Column int
	Word   string
}

// matches reports whether the row is excluded by the filter.
func (f ColumnFilter) matches(row []string) bool {
	return f.Column >= 0 && f.Column < len(row) && row[f.Column] == f.Word
}
