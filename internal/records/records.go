// Package records holds the camp leave book that the gridview demo
// displays: people, their leave tickets, and the grid layouts for both.
package records

import (
	"fmt"
	"strconv"
)

// Role is a person's role at the camp.
type Role string

const (
	RoleStaff  Role = "Staff"
	RoleCamper Role = "Camper"
)

// State is the state of a leave ticket.
type State string

const (
	StateActive   State = "Active"
	StatePending  State = "Pending"
	StateInactive State = "Inactive"
)

// Person is someone who can take leave.
type Person struct {
	ID      int    `toml:"id"`
	Role    Role   `toml:"role"`
	Name    string `toml:"name"`
	Surname string `toml:"surname"`
	Father  string `toml:"father"`
}

// Row returns the person as people grid cells.
func (p Person) Row() []string {
	return []string{strconv.Itoa(p.ID), string(p.Role), p.Name, p.Surname, p.Father}
}

// Ticket is one leave of absence.
type Ticket struct {
	ID             int    `toml:"id"`
	PersonID       int    `toml:"person"`
	Updated        bool   `toml:"updated"`
	State          State  `toml:"state"`
	Leave          string `toml:"leave"`
	DeclaredLeave  string `toml:"declared_leave"`
	Return         string `toml:"return"`
	DeclaredReturn string `toml:"declared_return"`
	Returned       string `toml:"returned"`
	Note           string `toml:"note"`
}

// Book is the set of people and tickets.
type Book struct {
	People  []Person `toml:"person"`
	Tickets []Ticket `toml:"ticket"`

	byID map[int]int
}

// Person returns the person with the given id.
func (b *Book) Person(id int) (Person, bool) {
	if b.byID == nil {
		b.byID = make(map[int]int, len(b.People))
		for i, p := range b.People {
			b.byID[p.ID] = i
		}
	}
	i, ok := b.byID[id]
	if !ok {
		return Person{}, false
	}
	return b.People[i], true
}

// TicketsOf returns the tickets of a person in book order.
func (b *Book) TicketsOf(personID int) []Ticket {
	var out []Ticket
	for _, t := range b.Tickets {
		if t.PersonID == personID {
			out = append(out, t)
		}
	}
	return out
}

// TicketRow returns the ticket as ticket grid cells.
func (b *Book) TicketRow(t Ticket) []string {
	updated := ""
	if t.Updated {
		updated = "*"
	}
	return append([]string{strconv.Itoa(t.ID), updated}, b.historyCells(t)...)
}

// HistoryRow returns the ticket as history grid cells, which omit the
// update mark.
func (b *Book) HistoryRow(t Ticket) []string {
	return append([]string{strconv.Itoa(t.ID)}, b.historyCells(t)...)
}

func (b *Book) historyCells(t Ticket) []string {
	p, _ := b.Person(t.PersonID)
	return []string{
		string(t.State), string(p.Role), p.Name, p.Surname, p.Father,
		t.Leave, t.DeclaredLeave, t.Return, t.DeclaredReturn, t.Returned, t.Note,
	}
}

// Validate checks that every ticket names a known person and ids are
// unique.
func (b *Book) Validate() error {
	b.byID = nil
	seen := make(map[int]bool, len(b.People))
	for _, p := range b.People {
		if seen[p.ID] {
			return fmt.Errorf("records: duplicate person id %d", p.ID)
		}
		seen[p.ID] = true
	}
	for _, t := range b.Tickets {
		if !seen[t.PersonID] {
			return fmt.Errorf("records: ticket %d names unknown person %d", t.ID, t.PersonID)
		}
	}
	return nil
}
