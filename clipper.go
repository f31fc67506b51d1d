package grid

// ListClipper computes the range of displayed slots that intersect the
// viewport. Offsets follow the grid convention: the row band is translated
// by a non-positive vertical offset.
//
// Usage:
//
//	clipper := NewListClipper(displayed, rowHeight, viewportHeight, vOffset)
//	for slot := clipper.StartIdx; slot < clipper.EndIdx; slot++ {
//	    y := clipper.ItemY(slot)
//	    // Draw row at y, inside the translated band
//	}
type ListClipper struct {
	StartIdx   int     // First visible slot (inclusive)
	EndIdx     int     // Last visible slot (exclusive)
	ItemHeight float32 // Height of each row
	TotalItems int     // Number of displayed slots
}

// NewListClipper calculates the visible slot range.
//
// Parameters:
//   - totalItems: number of displayed slots
//   - itemHeight: row height in pixels
//   - visibleHeight: height of the row area in pixels
//   - offset: current vertical offset (zero or negative)
func NewListClipper(totalItems int, itemHeight, visibleHeight, offset float32) *ListClipper {
	if totalItems <= 0 || itemHeight <= 0 {
		return &ListClipper{ItemHeight: itemHeight, TotalItems: max(totalItems, 0)}
	}

	startIdx := floorInt(-offset / itemHeight)
	if startIdx < 0 {
		startIdx = 0
	}

	// One extra row for partial visibility at the bottom.
	endIdx := startIdx + floorInt(visibleHeight/itemHeight) + 1

	if startIdx > totalItems {
		startIdx = totalItems
	}
	if endIdx > totalItems {
		endIdx = totalItems
	}

	return &ListClipper{
		StartIdx:   startIdx,
		EndIdx:     endIdx,
		ItemHeight: itemHeight,
		TotalItems: totalItems,
	}
}

// ShouldRender returns true if the slot falls in the visible range.
func (c *ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// ItemY returns the top of a slot inside the untranslated row band.
func (c *ListClipper) ItemY(idx int) float32 {
	return float32(idx) * c.ItemHeight
}

// VisibleCount returns the number of slots to paint.
func (c *ListClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the total height of all slots.
func (c *ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// RowsFitting returns how many whole rows fit in visibleHeight.
func (c *ListClipper) RowsFitting(visibleHeight float32) int {
	if c.ItemHeight <= 0 {
		return 0
	}
	return floorInt(visibleHeight / c.ItemHeight)
}

// ExtraRows returns how many slots do not fit in visibleHeight.
func (c *ListClipper) ExtraRows(visibleHeight float32) int {
	return max(0, c.TotalItems-c.RowsFitting(visibleHeight))
}

// ScrollToItem returns the offset that brings a slot fully into view.
// If the slot is already visible, returns the current offset unchanged.
func (c *ListClipper) ScrollToItem(idx int, offset, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return offset
	}

	itemTop := float32(idx) * c.ItemHeight
	itemBottom := itemTop + c.ItemHeight

	// Above the viewport: align its top with the top edge.
	if itemTop < -offset {
		return -itemTop
	}

	// Below the viewport: align its bottom with the bottom edge.
	if itemBottom > -offset+visibleHeight {
		return visibleHeight - itemBottom
	}

	return offset
}
