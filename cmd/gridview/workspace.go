package main

import (
	"github.com/staffledger/grid"
	"github.com/staffledger/grid/internal/logger"
	"github.com/staffledger/grid/internal/records"
)

// Grid names, also used as tab titles.
const (
	viewPeople  = "People"
	viewTickets = "Tickets"
	viewPersons = "Persons"
	viewHistory = "History"
)

// workspace holds the grids every front end shows. Create it before the
// host so the host can deliver notifications to it.
type workspace struct {
	people  *grid.Grid
	tickets *grid.Grid
	persons *grid.Grid // Mirror of people
	history *grid.Grid // Tickets of the person selected in persons

	link *records.History
}

type gridFactory func(name string) (*grid.Grid, error)

// build creates and fills the grids in tab order.
func (w *workspace) build(book *records.Book, create gridFactory) error {
	for _, v := range []struct {
		name string
		dst  **grid.Grid
	}{
		{viewPeople, &w.people},
		{viewTickets, &w.tickets},
		{viewPersons, &w.persons},
		{viewHistory, &w.history},
	} {
		g, err := create(v.name)
		if err != nil {
			return err
		}
		*v.dst = g
	}

	records.SetupPeople(w.people, book)
	records.SetupTickets(w.tickets, book)
	records.SetupPersons(w.persons, w.people)
	records.SetupHistory(w.history)
	w.link = records.NewHistory(book, w.persons, w.history, logger.L)
	return nil
}

// byName returns the grid called name, or nil.
func (w *workspace) byName(name string) *grid.Grid {
	switch name {
	case viewPeople:
		return w.people
	case viewTickets:
		return w.tickets
	case viewPersons:
		return w.persons
	case viewHistory:
		return w.history
	}
	return nil
}

// notify is the host notification callback.
func (w *workspace) notify(n grid.Notification) {
	logger.L.Debug("gridview: selection", "grid", n.Grid.Name(), "kind", n.Kind.String(), "slot", n.Slot)
	if w.link != nil {
		w.link.Handle(n)
	}
}

// gridOptions are the options shared by every grid.
func gridOptions(style grid.Style) []grid.Option {
	return []grid.Option{
		grid.WithStyle(style),
		grid.WithLogger(logger.L),
		grid.WithColorRules(cfg.Rules()),
	}
}
