package grid

import "sync"

// drawListPool provides efficient reuse of DrawList buffers between paints.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			Ops:       make([]Op, 0, 256),
			clipStack: make([][4]float32, 0, 8),
			xlatStack: make([]Vec2, 0, 4),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture and clip rectangle.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // Texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// OpKind identifies a recorded primitive.
type OpKind uint8

const (
	OpRect OpKind = iota + 1
	OpLine
	OpText
)

// Op is a primitive in surface coordinates, recorded alongside the vertex
// data. Cell-based surfaces rasterize Ops instead of triangles.
type Op struct {
	Kind  OpKind
	Min   Vec2 // Rect/line start, text origin
	Max   Vec2 // Rect/line end, text extent
	Color uint32
	Text  string
	Clip  [4]float32 // Clip rectangle in effect (x1, y1, x2, y2)
}

// DrawList accumulates draw commands for a paint pass.
// Coordinates passed to the Add* methods are offset by the current
// translation; clip rectangles are always in surface coordinates.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data
	Ops       []Op      // Primitives, in paint order

	FontTextureID uint32 // Texture bound for text quads

	clipStack    [][4]float32
	currentClip  [4]float32
	xlatStack    []Vec2
	xlat         Vec2
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets the DrawList for a new paint pass.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.Ops = dl.Ops[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.xlatStack = dl.xlatStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.xlat = Vec2{}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect narrows the clip to the intersection of the current clip
// and the given rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{maxf(c[0], x1), maxf(c[1], y1), minf(c[2], x2), minf(c[3], y2)}
	dl.splitDraw()
}

// PushClip is PushClipRect for a Rect.
func (dl *DrawList) PushClip(r Rect) {
	dl.PushClipRect(r.X, r.Y, r.Right(), r.Bottom())
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the clip rectangle currently in effect.
func (dl *DrawList) ClipRect() Rect {
	c := dl.currentClip
	return RectFromPoints(c[0], c[1], c[2], c[3])
}

// PushTranslate offsets every following primitive by (dx, dy), on top of
// any translation already in effect.
func (dl *DrawList) PushTranslate(dx, dy float32) {
	dl.xlatStack = append(dl.xlatStack, dl.xlat)
	dl.xlat = Vec2{X: dl.xlat.X + dx, Y: dl.xlat.Y + dy}
}

// Translation returns the offset currently applied to primitives.
func (dl *DrawList) Translation() Vec2 {
	return dl.xlat
}

// PopTranslate restores the previous translation.
func (dl *DrawList) PopTranslate() {
	n := len(dl.xlatStack)
	if n > 0 {
		dl.xlat = dl.xlatStack[n-1]
		dl.xlatStack = dl.xlatStack[:n-1]
	}
}

// setTexture switches the texture for subsequent primitives.
func (dl *DrawList) setTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addQuad appends a textured or flat quad to the current command.
func (dl *DrawList) addQuad(x1, y1, x2, y2, u0, v0, u1, v1 float32, color uint32) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	// uint16 indices are relative to the command's base vertex.
	if len(dl.VtxBuffer)-int(dl.cmdOffset) > 0xFFFF-4 {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x2, y1}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x1, y2}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	x += dl.xlat.X
	y += dl.xlat.Y

	dl.setTexture(0)
	dl.addQuad(x, y, x+w, y+h, 0, 0, 0, 0, color)
	dl.Ops = append(dl.Ops, Op{
		Kind:  OpRect,
		Min:   Vec2{X: x, Y: y},
		Max:   Vec2{X: x + w, Y: y + h},
		Color: color,
		Clip:  dl.currentClip,
	})
}

// AddRectOutline draws a one-pixel-per-thickness rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	dl.AddLine(x, y, x+w, y, color, thickness)
	dl.AddLine(x, y+h-thickness, x+w, y+h-thickness, color, thickness)
	dl.AddLine(x, y, x, y+h, color, thickness)
	dl.AddLine(x+w-thickness, y, x+w-thickness, y+h, color, thickness)
}

// AddLine draws an axis-aligned line starting at (x1, y1). The line covers
// thickness pixels to the right of a vertical line or below a horizontal one.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	x1 += dl.xlat.X
	x2 += dl.xlat.X
	y1 += dl.xlat.Y
	y2 += dl.xlat.Y

	qx1, qy1 := minf(x1, x2), minf(y1, y2)
	qx2, qy2 := maxf(x1, x2), maxf(y1, y2)
	if qx1 == qx2 {
		qx2 += thickness
	}
	if qy1 == qy2 {
		qy2 += thickness
	}

	dl.setTexture(0)
	dl.addQuad(qx1, qy1, qx2, qy2, 0, 0, 0, 0, color)
	dl.Ops = append(dl.Ops, Op{
		Kind:  OpLine,
		Min:   Vec2{X: x1, Y: y1},
		Max:   Vec2{X: x2, Y: y2},
		Color: color,
		Clip:  dl.currentClip,
	})
}

// AddText draws single-line text with the built-in bitmap font.
// charWidth and charHeight define the size of each character cell.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	x += dl.xlat.X
	y += dl.xlat.Y

	dl.setTexture(dl.FontTextureID)
	n := 0
	for _, r := range text {
		// 16x6 grid of 8x8 glyphs for ASCII 32-127 in a 128x48 texture.
		char := glyphFallback(r)
		idx := int(char - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)

		px := x + float32(n)*charWidth
		dl.addQuad(px, y, px+charWidth, y+charHeight,
			col*8/128, row*8/48, (col+1)*8/128, (row+1)*8/48, color)
		n++
	}

	dl.Ops = append(dl.Ops, Op{
		Kind:  OpText,
		Min:   Vec2{X: x, Y: y},
		Max:   Vec2{X: x + float32(n)*charWidth, Y: y + charHeight},
		Color: color,
		Text:  text,
		Clip:  dl.currentClip,
	})
}

// glyphFallback maps runes outside the bitmap font onto printable ASCII.
func glyphFallback(r rune) rune {
	if r >= 32 && r < 127 {
		return r
	}
	switch r {
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '✓', '✔':
		return '+'
	case '✕', '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	case '…':
		return '.'
	default:
		return '?'
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
