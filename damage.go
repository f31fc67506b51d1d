package grid

// maxRegionRects bounds how many disjoint rectangles a Region keeps before
// it collapses into its bounding box.
const maxRegionRects = 16

// Region accumulates invalidated areas between two paints.
// Multiple invalidations coalesce: rectangles swallowed by another are
// dropped, and once the list grows past maxRegionRects it collapses into a
// single bounding rectangle.
type Region struct {
	rects []Rect
}

// Add marks r as dirty.
func (rg *Region) Add(r Rect) {
	if r.Empty() {
		return
	}
	for _, existing := range rg.rects {
		if existing.ContainsRect(r) {
			return
		}
	}

	kept := rg.rects[:0]
	for _, existing := range rg.rects {
		if !r.ContainsRect(existing) {
			kept = append(kept, existing)
		}
	}
	rg.rects = append(kept, r)

	if len(rg.rects) > maxRegionRects {
		bounds := rg.Bounds()
		rg.rects = append(rg.rects[:0], bounds)
	}
}

// Subtract validates r: the covered area no longer needs painting.
func (rg *Region) Subtract(r Rect) {
	if r.Empty() || len(rg.rects) == 0 {
		return
	}
	out := make([]Rect, 0, len(rg.rects))
	for _, existing := range rg.rects {
		out = append(out, existing.Subtract(r)...)
	}
	rg.rects = out
}

// Intersects reports whether any dirty area overlaps r.
func (rg *Region) Intersects(r Rect) bool {
	for _, existing := range rg.rects {
		if existing.Intersects(r) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of the dirty area.
func (rg *Region) Bounds() Rect {
	var b Rect
	for _, r := range rg.rects {
		b = b.Union(r)
	}
	return b
}

// Rects returns the dirty rectangles. The slice is owned by the region.
func (rg *Region) Rects() []Rect {
	return rg.rects
}

// Empty reports whether nothing needs painting.
func (rg *Region) Empty() bool {
	return len(rg.rects) == 0
}

// Clear drops all dirty areas.
func (rg *Region) Clear() {
	rg.rects = rg.rects[:0]
}
