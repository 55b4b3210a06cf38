package deck

import "github.com/matzehuels/guestcard/pkg/card"

// Sample returns a demo deck with one entry per card shape: every category,
// both priority slots, notes, a hidden name row and explicit overrides.
func Sample() *Deck {
	const dates = "Oct 18 - Oct 21"
	d := &Deck{
		ViewportWidth: 390,
		Entries: []Entry{
			{
				ID:      "101-arrival",
				Record:  card.GuestRecord{Name: "Ana Silva", DateRange: dates, GuestCount: "2", TimeLabel: card.ETA, Time: "14:00"},
				Context: card.Context{Category: card.Arrival},
			},
			{
				ID:      "102-departure",
				Record:  card.GuestRecord{Name: "Bo Chen", DateRange: "Oct 15 - Oct 19", GuestCount: "3", TimeLabel: card.EDT, Time: "11:00"},
				Context: card.Context{Category: card.Departure},
			},
			{
				ID:      "103-stayover-notes",
				Record:  card.GuestRecord{Name: "Cleo Marsh", DateRange: dates, GuestCount: "1", TimeLabel: card.ETA, Time: "18:30"},
				Context: card.Context{Category: card.Stayover, HasNotes: true},
			},
			{
				ID:      "104-turndown",
				Record:  card.GuestRecord{Name: "Dev Patel", DateRange: dates},
				Context: card.Context{Category: card.Turndown},
			},
			{
				ID:      "201-priority-first",
				Record:  card.GuestRecord{Name: "Eli Novak", DateRange: dates, GuestCount: "2"},
				Context: card.Context{Category: card.ArrivalDeparture, IsPriority: true, Slot: card.First},
			},
			{
				ID:        "201-priority-second",
				Record:    card.GuestRecord{Name: "Fay Novak", DateRange: dates, GuestCount: "2"},
				Context:   card.Context{Category: card.ArrivalDeparture, IsPriority: true, Slot: card.Second},
				Overrides: &card.Overrides{ContainerLeft: card.Float(90)},
			},
			{
				ID:      "202-hidden-name",
				Record:  card.GuestRecord{Name: "Gus Ode", DateRange: dates, GuestCount: "4", TimeLabel: card.ETA, Time: "09:15"},
				Context: card.Context{Category: card.Arrival, IsPriority: true, HideNameRow: true},
			},
			{
				ID:        "203-departure-timed",
				Record:    card.GuestRecord{Name: "Hana Ito", DateRange: "Oct 16 - Oct 19", GuestCount: "2", TimeLabel: card.EDT, Time: "12:00"},
				Context:   card.Context{Category: card.Departure},
				Overrides: &card.Overrides{Time: &card.Point{Left: 150, Top: 0}},
			},
			{
				ID:      "301-unspecified",
				Record:  card.GuestRecord{Name: "Ivo Reyes", DateRange: dates},
				Context: card.Context{},
			},
		},
	}
	return d
}
