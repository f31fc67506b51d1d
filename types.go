package grid

import "math"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size, in surface pixels.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// RectFromPoints builds a rectangle from its top-left and bottom-right corners.
func RectFromPoints(x1, y1, x2, y2 float32) Rect {
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Right returns the x coordinate of the right edge (exclusive).
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ContainsRect returns true if other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Intersect returns the overlapping part of two rectangles.
// The result is empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x1 := maxf(r.X, other.X)
	y1 := maxf(r.Y, other.Y)
	x2 := minf(r.Right(), other.Right())
	y2 := minf(r.Bottom(), other.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return RectFromPoints(x1, y1, x2, y2)
}

// Union returns the smallest rectangle containing both rectangles.
// Empty rectangles are ignored.
func (r Rect) Union(other Rect) Rect {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	return RectFromPoints(
		minf(r.X, other.X), minf(r.Y, other.Y),
		maxf(r.Right(), other.Right()), maxf(r.Bottom(), other.Bottom()),
	)
}

// Subtract returns the parts of r not covered by other, as at most four
// non-overlapping rectangles (top band, bottom band, left and right slabs).
func (r Rect) Subtract(other Rect) []Rect {
	cut := r.Intersect(other)
	if cut.Empty() {
		return []Rect{r}
	}

	out := make([]Rect, 0, 4)
	if cut.Y > r.Y {
		out = append(out, RectFromPoints(r.X, r.Y, r.Right(), cut.Y))
	}
	if cut.Bottom() < r.Bottom() {
		out = append(out, RectFromPoints(r.X, cut.Bottom(), r.Right(), r.Bottom()))
	}
	if cut.X > r.X {
		out = append(out, RectFromPoints(r.X, cut.Y, cut.X, cut.Bottom()))
	}
	if cut.Right() < r.Right() {
		out = append(out, RectFromPoints(cut.Right(), cut.Y, r.Right(), cut.Bottom()))
	}
	return out
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGB creates an opaque packed color.
func RGB(r, g, b uint8) uint32 {
	return RGBA(r, g, b, 255)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// floorInt floors a pixel quotient to an integer index.
func floorInt(v float32) int {
	return int(math.Floor(float64(v)))
}
