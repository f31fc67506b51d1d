// Package terminal hosts grids in a terminal through bubbletea. A Surface
// rasterizes the grid's primitives onto a buffer of character cells, and
// Model routes terminal input to the grids.
package terminal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/staffledger/grid"
)

type cell struct {
	ch     rune
	fg, bg uint32
}

var blank = cell{ch: ' ', fg: grid.ColorBlack, bg: grid.ColorWhite}

// Surface is a grid.Surface made of character cells. Every cell covers
// CellWidth x CellHeight grid pixels. Cells keep their content between
// renders, so a partial paint only changes the cells it covers.
type Surface struct {
	cellW, cellH int
	cols, rows   int
	cells        []cell
	renders      int
	styles       map[[2]uint32]lipgloss.Style
}

// NewSurface creates a surface for a grid of width x height pixels.
func NewSurface(width, height, cellWidth, cellHeight int) *Surface {
	s := &Surface{
		cellW:  max(cellWidth, 1),
		cellH:  max(cellHeight, 1),
		styles: make(map[[2]uint32]lipgloss.Style),
	}
	s.Resize(width, height)
	return s
}

// Resize reallocates the cell buffer. The content is lost.
func (s *Surface) Resize(width, height int) {
	s.cols = max(width/s.cellW, 0)
	s.rows = max(height/s.cellH, 0)
	s.cells = make([]cell, s.cols*s.rows)
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Release drops the cell buffer.
func (s *Surface) Release() {
	s.cells = nil
	s.cols, s.rows = 0, 0
}

// FontTextureID returns 0: cells need no font texture.
func (s *Surface) FontTextureID() uint32 { return 0 }

// Render rasterizes the recorded primitives in order.
func (s *Surface) Render(dl *grid.DrawList) error {
	if s.cells == nil {
		return fmt.Errorf("terminal: render on released surface")
	}
	for _, op := range dl.Ops {
		clip := grid.RectFromPoints(op.Clip[0], op.Clip[1], op.Clip[2], op.Clip[3])
		switch op.Kind {
		case grid.OpRect:
			s.fill(grid.RectFromPoints(op.Min.X, op.Min.Y, op.Max.X, op.Max.Y).Intersect(clip), op.Color)
		case grid.OpLine:
			s.line(op, clip)
		case grid.OpText:
			s.text(op, clip)
		}
	}
	s.renders++
	return nil
}

// Size returns the buffer size in cells.
func (s *Surface) Size() (cols, rows int) { return s.cols, s.rows }

func (s *Surface) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return nil
	}
	return &s.cells[row*s.cols+col]
}

// center returns the pixel center of a cell.
func (s *Surface) center(col, row int) grid.Vec2 {
	return grid.Vec2{
		X: float32(col*s.cellW) + float32(s.cellW)/2,
		Y: float32(row*s.cellH) + float32(s.cellH)/2,
	}
}

// span returns the cells whose centers lie inside r.
func (s *Surface) span(r grid.Rect) (c0, r0, c1, r1 int) {
	if r.Empty() {
		return 0, 0, 0, 0
	}
	c0 = max(ceilDiv(r.X-float32(s.cellW)/2, s.cellW), 0)
	r0 = max(ceilDiv(r.Y-float32(s.cellH)/2, s.cellH), 0)
	c1 = min(ceilDiv(r.Right()-float32(s.cellW)/2, s.cellW), s.cols)
	r1 = min(ceilDiv(r.Bottom()-float32(s.cellH)/2, s.cellH), s.rows)
	return c0, r0, c1, r1
}

// fill paints the background of the covered cells and erases their text.
func (s *Surface) fill(r grid.Rect, color uint32) {
	c0, r0, c1, r1 := s.span(r)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			c := s.at(col, row)
			c.ch, c.bg = ' ', color
		}
	}
}

// line draws a one pixel line as box drawing characters. A line on a cell
// boundary belongs to the cell above or to the left.
func (s *Surface) line(op grid.Op, clip grid.Rect) {
	if op.Min.X == op.Max.X {
		if op.Min.X < clip.X || op.Min.X >= clip.Right() {
			return
		}
		col := floorDiv(op.Min.X-0.5, s.cellW)
		span := grid.RectFromPoints(op.Min.X, min(op.Min.Y, op.Max.Y), op.Min.X+1, max(op.Min.Y, op.Max.Y)).Intersect(clip)
		_, r0, _, r1 := s.span(grid.Rect{X: float32(col * s.cellW), Y: span.Y, W: float32(s.cellW), H: span.H})
		for row := r0; row < r1; row++ {
			s.stroke(col, row, '│', '─', op.Color)
		}
		return
	}

	if op.Min.Y < clip.Y || op.Min.Y >= clip.Bottom() {
		return
	}
	row := floorDiv(op.Min.Y-0.5, s.cellH)
	span := grid.RectFromPoints(min(op.Min.X, op.Max.X), op.Min.Y, max(op.Min.X, op.Max.X), op.Min.Y+1).Intersect(clip)
	c0, _, c1, _ := s.span(grid.Rect{X: span.X, Y: float32(row * s.cellH), W: span.W, H: float32(s.cellH)})
	for col := c0; col < c1; col++ {
		s.stroke(col, row, '─', '│', op.Color)
	}
}

func (s *Surface) stroke(col, row int, ch, cross rune, color uint32) {
	c := s.at(col, row)
	if c == nil {
		return
	}
	switch c.ch {
	case cross, '┼':
		c.ch = '┼'
	case ' ', ch:
		c.ch = ch
	default:
		// Text wins over decoration.
		return
	}
	c.fg = color
}

// text places one rune per cell, starting at the cell nearest to the
// text origin. Text centered in a box two cells high lands in the upper cell.
func (s *Surface) text(op grid.Op, clip grid.Rect) {
	col := floorDiv(op.Min.X+float32(s.cellW)/2, s.cellW)
	row := floorDiv(op.Min.Y+float32(s.cellH)/4, s.cellH)
	for i, r := range []rune(op.Text) {
		if !clip.Contains(s.center(col+i, row)) {
			continue
		}
		if c := s.at(col+i, row); c != nil {
			c.ch, c.fg = r, op.Color
		}
	}
}

// Lines returns the plain text of every row.
func (s *Surface) Lines() []string {
	out := make([]string, s.rows)
	for row := range s.rows {
		var b strings.Builder
		for _, c := range s.cells[row*s.cols : (row+1)*s.cols] {
			b.WriteRune(c.ch)
		}
		out[row] = b.String()
	}
	return out
}

// View renders the cells with their colors, one line per row.
func (s *Surface) View() string {
	var b strings.Builder
	for row := range s.rows {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := s.cells[row*s.cols : (row+1)*s.cols]
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end].fg == line[start].fg && line[end].bg == line[start].bg {
				end++
			}
			run := make([]rune, 0, end-start)
			for _, c := range line[start:end] {
				run = append(run, c.ch)
			}
			b.WriteString(s.style(line[start].fg, line[start].bg).Render(string(run)))
			start = end
		}
	}
	return b.String()
}

func (s *Surface) style(fg, bg uint32) lipgloss.Style {
	key := [2]uint32{fg, bg}
	st, ok := s.styles[key]
	if !ok {
		st = lipgloss.NewStyle().Foreground(hexColor(fg)).Background(hexColor(bg))
		s.styles[key] = st
	}
	return st
}

func hexColor(c uint32) lipgloss.Color {
	r, g, b, _ := grid.UnpackRGBA(c)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func floorDiv(v float32, size int) int {
	q := v / float32(size)
	i := int(q)
	if q < 0 && float32(i) != q {
		i--
	}
	return i
}

func ceilDiv(v float32, size int) int {
	q := v / float32(size)
	i := int(q)
	if q > 0 && float32(i) != q {
		i++
	}
	return i
}
