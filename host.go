package grid

// Surface is the paint target a host hands to each grid.
// A surface keeps its contents between paints, so a partial repaint only
// overwrites the dirty area.
type Surface interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
	Release()
}

// Host is the window that embeds a grid.
type Host interface {
	// DPIScale returns the display scale factor (1.0 at 96 DPI).
	DPIScale() float32

	// NewSurface allocates a paint surface of the given size in pixels.
	NewSurface(width, height int) (Surface, error)

	// Invalidate asks the host to call Paint before its next idle point.
	// r is the area that became dirty, in grid coordinates.
	Invalidate(g *Grid, r Rect)

	// SetCursor changes the pointer shape over the grid.
	SetCursor(c Cursor)

	// Notify delivers a selection notification.
	Notify(n Notification)
}

// BaseHost implements every Host method as a no-op. Embed it and override
// the methods a host cares about.
type BaseHost struct {
	Scale float32
}

// DPIScale returns Scale, or 1 when unset.
func (h BaseHost) DPIScale() float32 {
	if h.Scale <= 0 {
		return 1
	}
	return h.Scale
}

// NewSurface returns a surface that discards everything.
func (BaseHost) NewSurface(width, height int) (Surface, error) {
	return nopSurface{}, nil
}

func (BaseHost) Invalidate(*Grid, Rect) {}
func (BaseHost) SetCursor(Cursor)       {}
func (BaseHost) Notify(Notification)    {}

type nopSurface struct{}

func (nopSurface) Render(*DrawList) error { return nil }
func (nopSurface) FontTextureID() uint32  { return 0 }
func (nopSurface) Resize(int, int)        {}
func (nopSurface) Release()               {}

// NotificationKind tags a Notification.
type NotificationKind int

const (
	RowSelected NotificationKind = iota + 1
	RowUnselected
)

func (k NotificationKind) String() string {
	switch k {
	case RowSelected:
		return "row-selected"
	case RowUnselected:
		return "row-unselected"
	default:
		return "unknown"
	}
}

// Notification reports a selection change to the host.
// Slot is the displayed slot for RowSelected and -1 for RowUnselected.
type Notification struct {
	Kind NotificationKind
	Grid *Grid
	Slot int
}
