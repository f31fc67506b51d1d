package grid

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the grid reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyC
	KeyCount
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all bits of m are set.
func (mods Modifier) Has(m Modifier) bool {
	return mods&m == m
}

// Cursor is the pointer shape the grid asks the host to show.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorResizeEW
)

// Axis selects a scrollbar.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// Event is an input delivered by the host. Coordinates are in client pixels
// relative to the grid's top-left corner.
type Event interface {
	isEvent()
}

// PointerMove reports the pointer position.
type PointerMove struct {
	X, Y float32
}

// PointerDown reports a button press at a position.
type PointerDown struct {
	X, Y   float32
	Button MouseButton
}

// PointerUp reports a button release at a position.
type PointerUp struct {
	X, Y   float32
	Button MouseButton
}

// PointerLeave reports the pointer leaving the grid.
type PointerLeave struct{}

// Wheel reports scroll wheel motion in lines. Positive DY scrolls towards
// the first row. Shift turns vertical motion into horizontal scrolling.
type Wheel struct {
	DX, DY float32
	Shift  bool
}

// KeyPress reports a key press while the grid has focus.
type KeyPress struct {
	Key  Key
	Mods Modifier
}

// Resize reports a new client size in pixels.
type Resize struct {
	Width, Height int
}

// ScrollTo reports a scrollbar thumb moved by the host to Pos, in the
// units of the ScrollInfo last published for Axis.
type ScrollTo struct {
	Axis Axis
	Pos  int
}

// DPIChanged reports a new display scale factor.
type DPIChanged struct {
	Scale float32
}

func (PointerMove) isEvent()  {}
func (PointerDown) isEvent()  {}
func (PointerUp) isEvent()    {}
func (PointerLeave) isEvent() {}
func (Wheel) isEvent()        {}
func (KeyPress) isEvent()     {}
func (Resize) isEvent()       {}
func (ScrollTo) isEvent()     {}
func (DPIChanged) isEvent()   {}
