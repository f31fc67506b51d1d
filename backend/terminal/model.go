package terminal

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staffledger/grid"
)

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#496EB7")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	statusCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#496EB7")).
				Bold(true)
)

// Lines taken by the tab bar and the status line.
const chromeLines = 2

// Default terminal size until the first tea.WindowSizeMsg.
const (
	defaultCols = 80
	defaultRows = 24
)

type pane struct {
	title   string
	grid    *grid.Grid
	surface *Surface
	filter  string
}

// paneHost hands the surface a grid creates to its pane.
type paneHost struct {
	*Host
	p *pane
}

func (h paneHost) NewSurface(width, height int) (grid.Surface, error) {
	s := NewSurface(width, height, h.cellW, h.cellH)
	h.p.surface = s
	return s, nil
}

// Model is a bubbletea model showing one grid at a time, with a tab bar, a
// filter input and a status line.
type Model struct {
	host   *Host
	keys   KeyMap
	log    *slog.Logger
	panes  []*pane
	active int

	filter        textinput.Model
	width, height int // Terminal size in cells
	status        string
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) ModelOption {
	return func(m *Model) { m.keys = km }
}

// WithLogger sets the logger for model records.
func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// NewModel creates an empty model. Add grids with AddGrid before running it.
func NewModel(host *Host, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter"
	ti.CharLimit = 64

	m := &Model{
		host:   host,
		keys:   DefaultKeyMap(),
		log:    slog.Default(),
		filter: ti,
		width:  defaultCols,
		height: defaultRows,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddGrid creates a grid filling the grid area and adds it as a tab.
func (m *Model) AddGrid(title string, opts ...grid.Option) (*grid.Grid, error) {
	p := &pane{title: title}
	w, h := m.gridSize()
	opts = append([]grid.Option{
		grid.WithName(title),
		grid.WithStyle(Style(grid.DefaultStyle(), m.host.cellW, m.host.cellH)),
	}, opts...)

	g, err := grid.New(paneHost{Host: m.host, p: p}, w, h, opts...)
	if err != nil {
		return nil, fmt.Errorf("terminal: add %q: %w", title, err)
	}
	p.grid = g
	m.panes = append(m.panes, p)
	return g, nil
}

// Active returns the grid of the current tab, or nil when there is none.
func (m *Model) Active() *grid.Grid {
	if len(m.panes) == 0 {
		return nil
	}
	return m.panes[m.active].grid
}

// SetStatus shows msg in the status line until the next key press.
func (m *Model) SetStatus(msg string) { m.status = msg }

// Close closes every grid.
func (m *Model) Close() {
	for _, p := range m.panes {
		p.grid.Close()
	}
	m.panes = nil
}

// gridSize returns the grid area in pixels.
func (m *Model) gridSize() (width, height int) {
	return m.width * m.host.cellW, max(m.height-chromeLines, 1) * m.host.cellH
}

// Init paints every grid once.
func (m *Model) Init() tea.Cmd {
	m.paint()
	return nil
}

// Update routes a message to the active grid and repaints what changed.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := m.gridSize()
		for _, p := range m.panes {
			p.grid.HandleEvent(grid.Resize{Width: w, Height: h})
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.paint()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filter.Focused() {
		return m.handleFilterKey(msg)
	}
	m.status = ""

	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}
	g := m.Active()
	if g == nil {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.NextPane):
		m.switchPane(m.active + 1)
	case key.Matches(msg, m.keys.PrevPane):
		m.switchPane(m.active - 1)
	case key.Matches(msg, m.keys.Filter):
		m.filter.SetValue(m.panes[m.active].filter)
		return m.filter.Focus()
	case key.Matches(msg, m.keys.Sort):
		col := int(msg.Runes[0] - '1')
		g.SortByColumn(col)
	case key.Matches(msg, m.keys.Copy):
		g.HandleEvent(grid.KeyPress{Key: grid.KeyC, Mods: grid.ModCtrl})
		if g.IsSomeRowSelected() {
			m.status = "Copied row"
		}
	case key.Matches(msg, m.keys.Up):
		g.HandleEvent(grid.KeyPress{Key: grid.KeyUp})
	case key.Matches(msg, m.keys.Down):
		g.HandleEvent(grid.KeyPress{Key: grid.KeyDown})
	case key.Matches(msg, m.keys.PageUp):
		g.HandleEvent(grid.KeyPress{Key: grid.KeyPageUp})
	case key.Matches(msg, m.keys.PageDown):
		g.HandleEvent(grid.KeyPress{Key: grid.KeyPageDown})
	case key.Matches(msg, m.keys.Home):
		g.HandleEvent(grid.KeyPress{Key: grid.KeyHome})
	case key.Matches(msg, m.keys.End):
		g.HandleEvent(grid.KeyPress{Key: grid.KeyEnd})
	case key.Matches(msg, m.keys.Esc):
		g.HandleEvent(grid.KeyPress{Key: grid.KeyEscape})
	}
	return nil
}

// handleFilterKey edits the filter and applies it as the user types.
func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)

	p := m.panes[m.active]
	if v := m.filter.Value(); v != p.filter {
		p.grid.ApplyFilter(v)
		m.shareFilter(p.grid.Store(), v)
		m.log.Debug("terminal: filter", "grid", p.title, "needle", v, "shown", p.grid.DisplayedRowCount())
	}
	return cmd
}

// shareFilter records needle on every pane displaying store, since a
// filter applied through one of them reorders the rows of all.
func (m *Model) shareFilter(store *grid.Store, needle string) {
	for _, p := range m.panes {
		if p.grid.Store() == store {
			p.filter = needle
		}
	}
}

func (m *Model) switchPane(i int) {
	n := len(m.panes)
	m.Active().HandleEvent(grid.PointerLeave{})
	m.active = ((i % n) + n) % n
	m.filter.SetValue(m.panes[m.active].filter)
}

// handleMouse converts a cell position to the pixel at the cell center.
// Positions outside the grid area leave the grid.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	g := m.Active()
	if g == nil {
		return
	}
	if msg.Y < 1 || msg.Y >= m.height-1 {
		g.HandleEvent(grid.PointerLeave{})
		return
	}
	x := float32(msg.X*m.host.cellW) + float32(m.host.cellW)/2
	y := float32((msg.Y-1)*m.host.cellH) + float32(m.host.cellH)/2

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		g.HandleEvent(grid.Wheel{DY: 1, Shift: msg.Shift})
		return
	case tea.MouseButtonWheelDown:
		g.HandleEvent(grid.Wheel{DY: -1, Shift: msg.Shift})
		return
	case tea.MouseButtonWheelLeft:
		g.HandleEvent(grid.Wheel{DX: -1})
		return
	case tea.MouseButtonWheelRight:
		g.HandleEvent(grid.Wheel{DX: 1})
		return
	}

	g.HandleEvent(grid.PointerMove{X: x, Y: y})
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		g.HandleEvent(grid.PointerDown{X: x, Y: y, Button: grid.MouseButtonLeft})
	case tea.MouseActionRelease:
		g.HandleEvent(grid.PointerUp{X: x, Y: y, Button: grid.MouseButtonLeft})
	}
}

// paint repaints every grid with dirty areas, so hidden tabs stay current
// for mirrors and history views.
func (m *Model) paint() {
	for _, p := range m.panes {
		if !p.grid.NeedsPaint() {
			continue
		}
		if err := p.grid.Paint(); err != nil {
			m.log.Error("terminal: paint failed", "grid", p.title, "error", err)
			m.status = err.Error()
		}
	}
}

// View renders the tab bar, the active grid and the status line.
func (m *Model) View() string {
	if len(m.panes) == 0 {
		return "no grids\n"
	}
	p := m.panes[m.active]
	body := ""
	if p.surface != nil {
		body = p.surface.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), body, m.renderStatus())
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, len(m.panes)+1)
	for i, p := range m.panes {
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(p.title))
		} else {
			tabs = append(tabs, tabStyle.Render(p.title))
		}
	}
	if m.filter.Focused() {
		tabs = append(tabs, " "+m.filter.View())
	} else if f := m.panes[m.active].filter; f != "" {
		tabs = append(tabs, statusStyle.Render(" /"+f))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderStatus() string {
	g := m.Active()
	parts := []string{
		statusCountStyle.Render(fmt.Sprintf("%d/%d", g.DisplayedRowCount(), g.RowCount())),
	}
	if row, err := g.SelectedRow(); err == nil {
		parts = append(parts, strings.Join(row, " | "))
	}
	if m.host.Cursor() == grid.CursorResizeEW {
		parts = append(parts, "↔")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}
