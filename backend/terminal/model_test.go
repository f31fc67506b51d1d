package terminal

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffledger/grid"
)

// newTestModel returns a model with a 40x12 terminal of 8x16 cells and a
// People grid. The grid area is 320x160 pixels.
func newTestModel(t *testing.T) (*Model, *grid.Grid) {
	t.Helper()
	m := NewModel(NewHost(8, 16))
	g, err := m.AddGrid("People")
	require.NoError(t, err)
	t.Cleanup(m.Close)

	g.AddColumn("Name", 80)
	g.AddColumn("State", 64)
	g.AddRow([]string{"alpha", "active"})
	g.AddRow([]string{"bravo", "pending"})
	g.AddRow([]string{"charlie", "inactive"})

	send(m, tea.WindowSizeMsg{Width: 40, Height: 12})
	return m, g
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// clickCell clicks the terminal cell at (x, y).
func clickCell(m *Model, x, y int) {
	send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
}

func TestModelPaintsGrid(t *testing.T) {
	m, _ := newTestModel(t)
	lines := m.panes[0].surface.Lines()
	require.Len(t, lines, 10)

	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[0], "State")
	assert.Contains(t, lines[2], "alpha")
	assert.Contains(t, lines[2], "active")
	assert.Contains(t, lines[4], "charlie")

	view := m.View()
	assert.Contains(t, view, "People")
	assert.Contains(t, view, "3/3")
}

func TestModelResize(t *testing.T) {
	m, g := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 60, Height: 20})

	w, h := g.Size()
	assert.Equal(t, 480, w)
	assert.Equal(t, 288, h)
	cols, rows := m.panes[0].surface.Size()
	assert.Equal(t, 60, cols)
	assert.Equal(t, 18, rows)
}

func TestModelClickSelects(t *testing.T) {
	m, g := newTestModel(t)

	// Terminal line 4 is grid cell row 3, the second data row.
	clickCell(m, 5, 4)

	row, err := g.SelectedRow()
	require.NoError(t, err)
	assert.Equal(t, []string{"bravo", "pending"}, row)
	assert.Contains(t, m.View(), "bravo | pending")
}

func TestModelKeysMoveSelection(t *testing.T) {
	m, g := newTestModel(t)

	send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, g.SelectedSlot())
	send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, g.SelectedSlot())
	send(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, g.SelectedSlot())
	send(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, g.SelectedSlot())
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, g.IsSomeRowSelected())
}

func TestModelCopy(t *testing.T) {
	m, g := newTestModel(t)
	g.SelectSlot(1)

	send(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.Equal(t, "bravo\tpending", m.host.copied)
	assert.Equal(t, "Copied row", m.status)
}

func TestModelFilter(t *testing.T) {
	m, g := newTestModel(t)

	send(m, runes("/"))
	require.True(t, m.filter.Focused())

	send(m, runes("b"))
	send(m, runes("r"))
	assert.Equal(t, 1, g.DisplayedRowCount())
	assert.Equal(t, "bravo", g.CellContent(0, 0))

	// Keys go to the filter while it has focus.
	send(m, runes("q"))
	assert.Equal(t, "brq", m.filter.Value())
	send(m, tea.KeyMsg{Type: tea.KeyBackspace})

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.filter.Focused())
	assert.Contains(t, m.View(), "/br")
	assert.Contains(t, m.View(), "1/3")
}

func TestModelSortKeys(t *testing.T) {
	m, g := newTestModel(t)

	send(m, runes("1"))
	send(m, runes("1"))
	assert.Equal(t, "charlie", g.CellContent(0, 0))

	send(m, runes("2"))
	assert.Equal(t, "active", g.CellContent(0, 1))

	// No such column.
	send(m, runes("9"))
	assert.Equal(t, "active", g.CellContent(0, 1))
}

func TestModelWheel(t *testing.T) {
	m, g := newTestModel(t)
	for i := range 30 {
		g.AddRow([]string{fmt.Sprintf("row %02d", i), "active"})
	}

	send(m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	_, v := g.Offsets()
	assert.Less(t, v, float32(0))

	send(m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	_, v = g.Offsets()
	assert.Equal(t, float32(0), v)
}

func TestModelTabs(t *testing.T) {
	m, people := newTestModel(t)
	tickets, err := m.AddGrid("Tickets")
	require.NoError(t, err)

	send(m, runes("/"))
	send(m, runes("a"))
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Same(t, tickets, m.Active())
	assert.Empty(t, m.filter.Value())

	send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Same(t, people, m.Active())
	assert.Equal(t, "a", m.filter.Value())
}

func TestModelFilterSharedWithMirror(t *testing.T) {
	m, people := newTestModel(t)
	persons, err := m.AddGrid("Persons")
	require.NoError(t, err)
	persons.Mirror(people)

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Same(t, persons, m.Active())
	send(m, runes("/"))
	send(m, runes("ch"))
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, people.DisplayedRowCount())

	send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Same(t, people, m.Active())
	assert.Equal(t, "ch", m.filter.Value())
	assert.Contains(t, m.View(), "/ch")
	assert.Contains(t, m.View(), "1/3")
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelMouseOutsideGridLeaves(t *testing.T) {
	m, g := newTestModel(t)
	send(m, tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionMotion})
	require.Equal(t, 0, g.HoveredSlot())

	send(m, tea.MouseMsg{X: 5, Y: 0, Action: tea.MouseActionMotion})
	assert.Equal(t, -1, g.HoveredSlot())
}

func TestModelViewWithoutGrids(t *testing.T) {
	m := NewModel(NewHost(8, 16))
	assert.True(t, strings.HasPrefix(m.View(), "no grids"))
}
