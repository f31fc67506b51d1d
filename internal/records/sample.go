package records

import "fmt"

var (
	sampleNames    = []string{"Eleni", "Nikos", "Maria", "Giorgos", "Katerina", "Dimitris", "Sofia", "Yannis", "Anna", "Kostas", "Ioanna", "Petros"}
	sampleSurnames = []string{"Papadopoulos", "Georgiou", "Nikolaidis", "Pappas", "Vlachos", "Oikonomou", "Karagiannis", "Makris"}
	sampleFathers  = []string{"Andreas", "Vasilis", "Christos", "Michalis", "Stavros"}
	sampleNotes    = []string{"", "Family visit", "Medical appointment", "", "Exams", "Returned late"}
)

// Sample returns a deterministic book of people and tickets.
func Sample(people, ticketsPerPerson int) *Book {
	b := &Book{}
	for i := range people {
		role := RoleCamper
		if i%4 == 0 {
			role = RoleStaff
		}
		b.People = append(b.People, Person{
			ID:      i + 1,
			Role:    role,
			Name:    sampleNames[i%len(sampleNames)],
			Surname: sampleSurnames[(i*3)%len(sampleSurnames)],
			Father:  sampleFathers[(i*7)%len(sampleFathers)],
		})
	}

	states := []State{StateInactive, StateInactive, StateActive, StatePending}
	id := 1
	for n := range ticketsPerPerson {
		for _, p := range b.People {
			day := 1 + (id*5)%27
			t := Ticket{
				ID:             id,
				PersonID:       p.ID,
				Updated:        id%7 == 0,
				State:          states[(id+n)%len(states)],
				Leave:          fmt.Sprintf("2025-07-%02d", day),
				DeclaredLeave:  fmt.Sprintf("%02d:00", 8+id%10),
				Return:         fmt.Sprintf("2025-07-%02d", day+1),
				DeclaredReturn: fmt.Sprintf("%02d:30", 12+id%9),
				Note:           sampleNotes[id%len(sampleNotes)],
			}
			if t.State == StateInactive {
				t.Returned = fmt.Sprintf("%02d:45", 12+id%9)
			}
			b.Tickets = append(b.Tickets, t)
			id++
		}
	}
	return b
}
