package grid

// Style defines the colors and unscaled metrics of a grid.
// Metrics are in pixels at a DPI scale of 1.0.
type Style struct {
	// Frame
	BackgroundColor uint32
	OutlineColor    uint32
	FrameColor      uint32 // Top, bottom and right border lines
	ColumnLineColor uint32

	// Rows
	RowColor         uint32
	RowHoveredColor  uint32
	RowSelectedColor uint32
	TextColor        uint32 // Cell text without a ColorRule

	// Label bar
	LabelTopColor           uint32
	LabelBottomColor        uint32
	LabelHoveredTopColor    uint32
	LabelHoveredBottomColor uint32
	LabelClickedTopColor    uint32
	LabelClickedBottomColor uint32
	LabelTextColor          uint32
	LabelUnderlineColor     uint32

	// Scrollbars
	ScrollbarTrackColor uint32
	ScrollbarThumbColor uint32
	FillerColor         uint32

	// Font
	CharWidth  float32
	CharHeight float32
	FontScale  float32

	// Sizing
	LabelBarHeight float32
	RowInset       float32 // Row height is the label bar height minus this
	ScrollbarSize  float32
	DragTolerance  float32 // Distance from a column border that arms a resize
	MinColumnWidth float32
	CellPadding    float32
}

// DefaultStyle returns the light theme the grid ships with.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: ColorWhite,
		OutlineColor:    ColorBlack,
		FrameColor:      RGB(128, 154, 173),
		ColumnLineColor: RGB(128, 154, 173),

		RowColor:         RGB(247, 247, 247),
		RowHoveredColor:  RGB(240, 240, 240),
		RowSelectedColor: RGB(230, 230, 230),
		TextColor:        ColorBlack,

		LabelTopColor:           RGB(240, 240, 240),
		LabelBottomColor:        RGB(230, 230, 230),
		LabelHoveredTopColor:    RGB(235, 235, 235),
		LabelHoveredBottomColor: RGB(225, 225, 225),
		LabelClickedTopColor:    RGB(230, 230, 230),
		LabelClickedBottomColor: RGB(220, 220, 220),
		LabelTextColor:          ColorBlack,
		LabelUnderlineColor:     RGB(109, 131, 147),

		ScrollbarTrackColor: RGB(240, 240, 240),
		ScrollbarThumbColor: RGB(192, 192, 192),
		FillerColor:         RGB(230, 230, 230),

		CharWidth:  8,
		CharHeight: 8,
		FontScale:  1,

		LabelBarHeight: 30,
		RowInset:       6,
		ScrollbarSize:  20,
		DragTolerance:  5,
		MinColumnWidth: 30,
		CellPadding:    4,
	}
}

// metrics are the Style sizes multiplied by the DPI scale and truncated to
// whole pixels.
type metrics struct {
	labelBar   float32
	row        float32
	scrollbar  float32
	dragTol    float32
	minColumn  float32
	padding    float32
	charWidth  float32
	charHeight float32
}

func scaledMetrics(s Style, dpi float32) metrics {
	px := func(v float32) float32 { return float32(int(v * dpi)) }
	m := metrics{
		labelBar:   px(s.LabelBarHeight),
		scrollbar:  px(s.ScrollbarSize),
		dragTol:    px(s.DragTolerance),
		minColumn:  px(s.MinColumnWidth),
		padding:    px(s.CellPadding),
		charWidth:  px(s.CharWidth * s.FontScale),
		charHeight: px(s.CharHeight * s.FontScale),
	}
	m.row = m.labelBar - px(s.RowInset)
	if m.row < 1 {
		m.row = 1
	}
	return m
}
