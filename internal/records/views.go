package records

import (
	"log/slog"
	"strconv"

	"github.com/staffledger/grid"
)

// Rule colors.
var (
	colorActive   = grid.RGB(0, 200, 0)
	colorPending  = grid.RGB(255, 216, 76)
	colorInactive = grid.RGB(255, 0, 0)
	colorStaff    = grid.RGB(73, 150, 183)
	colorCamper   = grid.RGB(0, 0, 255)
)

type column struct {
	name  string
	width float32
}

var (
	peopleColumns = []column{
		{"#", 30}, {"Role", 160}, {"Name", 160}, {"Surname", 160}, {"Father", 160},
	}
	ticketColumns = []column{
		{"#", 30}, {"Upd.", 50}, {"State", 100}, {"Role", 140}, {"Name", 140},
		{"Surname", 140}, {"Father", 140}, {"Leave", 140}, {"Decl. leave", 100},
		{"Return", 140}, {"Decl. return", 100}, {"Returned", 100}, {"Note", 200},
	}
)

func addColumns(g *grid.Grid, cols []column) {
	for _, c := range cols {
		g.AddColumn(c.name, c.width)
	}
}

func roleRules(g *grid.Grid, col int) {
	g.SetColorRule(string(RoleStaff), colorStaff, col)
	g.SetColorRule(string(RoleCamper), colorCamper, col)
}

func stateRules(g *grid.Grid, col int) {
	g.SetColorRule(string(StateActive), colorActive, col)
	g.SetColorRule(string(StatePending), colorPending, col)
	g.SetColorRule(string(StateInactive), colorInactive, col)
}

// SetupPeople lays out g as a people list and fills it.
func SetupPeople(g *grid.Grid, b *Book) {
	addColumns(g, peopleColumns)
	roleRules(g, 1)
	for _, p := range b.People {
		g.AddRow(p.Row())
	}
}

// SetupTickets lays out g as the ticket list and fills it.
func SetupTickets(g *grid.Grid, b *Book) {
	addColumns(g, ticketColumns)
	stateRules(g, 2)
	roleRules(g, 3)
	for _, t := range b.Tickets {
		g.AddRow(b.TicketRow(t))
	}
}

// SetupPersons makes g a mirror of a people list with the same colors.
func SetupPersons(g, people *grid.Grid) {
	g.Mirror(people)
	roleRules(g, 1)
}

// SetupHistory lays out g as an empty history list.
func SetupHistory(g *grid.Grid) {
	addColumns(g, append([]column{ticketColumns[0]}, ticketColumns[2:]...))
	stateRules(g, 1)
	roleRules(g, 2)
}

// History shows the tickets of whoever is selected in a person list. The
// person list is usually a mirror of the people list.
type History struct {
	book    *Book
	persons *grid.Grid
	tickets *grid.Grid
	log     *slog.Logger
}

// NewHistory links a person list to a history list. Feed it the
// notifications of the person list's host.
func NewHistory(b *Book, persons, tickets *grid.Grid, log *slog.Logger) *History {
	if log == nil {
		log = slog.Default()
	}
	return &History{book: b, persons: persons, tickets: tickets, log: log}
}

// Handle refills or clears the history list when the person selection
// changes. Notifications from other grids are ignored.
func (h *History) Handle(n grid.Notification) {
	if n.Grid != h.persons {
		return
	}
	switch n.Kind {
	case grid.RowSelected:
		h.Fill()
	case grid.RowUnselected:
		h.tickets.Clear()
	}
}

// Fill replaces the history list with the selected person's tickets.
func (h *History) Fill() {
	h.tickets.Clear()
	if !h.persons.IsSomeRowSelected() {
		return
	}

	text := h.persons.CellContent(h.persons.SelectedSlot(), 0)
	id, err := strconv.Atoi(text)
	if err != nil {
		h.log.Warn("records: person id is not a number", "id", text)
		return
	}
	tickets := h.book.TicketsOf(id)
	for _, t := range tickets {
		h.tickets.AddRow(h.book.HistoryRow(t))
	}
	h.log.Debug("records: history filled", "person", id, "tickets", len(tickets))
}
