package records

import (
	"slices"
	"strings"
	"testing"

	"github.com/staffledger/grid"
)

type notifyHost struct {
	grid.BaseHost
	fn func(grid.Notification)
}

func (h *notifyHost) Notify(n grid.Notification) {
	if h.fn != nil {
		h.fn(n)
	}
}

func newGrid(t *testing.T, host grid.Host, name string) *grid.Grid {
	t.Helper()
	g, err := grid.New(host, 800, 400, grid.WithName(name))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return g
}

func TestSampleIsValid(t *testing.T) {
	b := Sample(12, 3)
	if len(b.People) != 12 || len(b.Tickets) != 36 {
		t.Fatalf("got %d people, %d tickets", len(b.People), len(b.Tickets))
	}
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
	if n := len(b.TicketsOf(5)); n != 3 {
		t.Errorf("person 5 has %d tickets, want 3", n)
	}
	if b.People[0].Role != RoleStaff || b.People[1].Role != RoleCamper {
		t.Error("unexpected roles")
	}
}

func TestTicketRows(t *testing.T) {
	b := &Book{
		People:  []Person{{ID: 7, Role: RoleCamper, Name: "Anna", Surname: "Makris", Father: "Stavros"}},
		Tickets: []Ticket{{ID: 3, PersonID: 7, Updated: true, State: StatePending, Note: "Exams"}},
	}

	row := b.TicketRow(b.Tickets[0])
	if len(row) != len(ticketColumns) {
		t.Fatalf("ticket row has %d cells, want %d", len(row), len(ticketColumns))
	}
	if row[1] != "*" || row[2] != "Pending" || row[4] != "Anna" || row[12] != "Exams" {
		t.Errorf("unexpected row %q", row)
	}

	hist := b.HistoryRow(b.Tickets[0])
	if len(hist) != len(ticketColumns)-1 || hist[1] != "Pending" {
		t.Errorf("unexpected history row %q", hist)
	}
}

func TestLoad(t *testing.T) {
	const data = `
[[person]]
id = 1
role = "Staff"
name = "Eleni"
surname = "Vlachos"

[[ticket]]
id = 10
person = 1
state = "Active"
leave = "2025-07-02"
`
	b, err := Load(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := b.Person(1); !ok || p.Name != "Eleni" {
		t.Errorf("person 1 = %+v, %v", p, ok)
	}
	if got := b.TicketsOf(1); len(got) != 1 || got[0].State != StateActive {
		t.Errorf("tickets = %+v", got)
	}
}

func TestLoadRejectsUnknownPerson(t *testing.T) {
	_, err := Load(strings.NewReader("[[ticket]]\nid = 1\nperson = 9\n"))
	if err == nil || !strings.Contains(err.Error(), "unknown person 9") {
		t.Errorf("expected unknown person error, got %v", err)
	}
}

func TestSetupPeople(t *testing.T) {
	b := Sample(4, 0)
	g := newGrid(t, grid.BaseHost{}, "people")
	SetupPeople(g, b)

	if g.RowCount() != 4 || len(g.Columns()) != len(peopleColumns) {
		t.Fatalf("got %d rows, %d columns", g.RowCount(), len(g.Columns()))
	}
	if got := g.CellContent(0, 1); got != "Staff" {
		t.Errorf("cell (0, 1) = %q", got)
	}
}

func TestHistoryFollowsSelection(t *testing.T) {
	b := Sample(6, 2)
	host := &notifyHost{}

	people := newGrid(t, grid.BaseHost{}, "people")
	SetupPeople(people, b)

	persons := newGrid(t, host, "persons")
	SetupPersons(persons, people)
	history := newGrid(t, grid.BaseHost{}, "history")
	SetupHistory(history)

	if !persons.IsMirror() || len(persons.Columns()) != len(peopleColumns) {
		t.Fatal("persons list should mirror the people list")
	}

	h := NewHistory(b, persons, history, nil)
	host.fn = h.Handle

	persons.SelectSlot(2)
	if history.RowCount() != 2 {
		t.Fatalf("expected 2 tickets, got %d", history.RowCount())
	}
	for slot := range history.DisplayedRowCount() {
		if got := history.CellContent(slot, 3); got != b.People[2].Name {
			t.Errorf("slot %d shows %q, want %q", slot, got, b.People[2].Name)
		}
	}

	persons.SelectSlot(4)
	ids := []string{history.CellContent(0, 0), history.CellContent(1, 0)}
	var want []string
	for _, tk := range b.TicketsOf(5) {
		want = append(want, b.HistoryRow(tk)[0])
	}
	if !slices.Equal(ids, want) {
		t.Errorf("history shows %v, want %v", ids, want)
	}

	persons.UnselectSelectedRow()
	if history.RowCount() != 0 {
		t.Errorf("expected empty history, got %d rows", history.RowCount())
	}

	// The people list is untouched by the mirror's selection.
	if people.IsSomeRowSelected() || people.RowCount() != 6 {
		t.Error("people list changed")
	}
}
