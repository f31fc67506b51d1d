package grid

// State is the interaction state of a grid. Exactly one is active.
type State int

const (
	// Idle: the pointer is outside, past the last column or below the last row.
	Idle State = iota
	// HoveringRow: the pointer is over a displayed row.
	HoveringRow
	// HoveringColumnLabel: the pointer is over a column label.
	HoveringColumnLabel
	// ResizeArmed: the pointer is within the drag tolerance of a column's
	// right border; pressing starts a resize.
	ResizeArmed
	// DraggingColumnBorder: a column is being resized.
	DraggingColumnBorder
	// AwaitingSortClick: a label was pressed; releasing on it sorts.
	AwaitingSortClick
	// ScrollTracking: the button was pressed on a scrollbar; moving drags
	// the thumb.
	ScrollTracking
)

var stateNames = [...]string{
	Idle:                 "idle",
	HoveringRow:          "hovering-row",
	HoveringColumnLabel:  "hovering-column-label",
	ResizeArmed:          "resize-armed",
	DraggingColumnBorder: "dragging-column-border",
	AwaitingSortClick:    "awaiting-sort-click",
	ScrollTracking:       "scroll-tracking",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// State returns the current interaction state.
func (g *Grid) State() State { return g.state }

// setState switches state and keeps the pointer shape in step with it.
func (g *Grid) setState(s State) {
	g.state = s
	c := CursorArrow
	if s == ResizeArmed || s == DraggingColumnBorder {
		c = CursorResizeEW
	}
	if c != g.cursor {
		g.cursor = c
		g.host.SetCursor(c)
	}
}
