package rows

import "github.com/matzehuels/guestcard/pkg/card"

// Completeness describes which optional fields a sample record carries.
type Completeness string

// Record completeness levels used by [Matrix].
const (
	Bare      Completeness = "bare"
	CountOnly Completeness = "count"
	TimeOnly  Completeness = "time"
	Full      Completeness = "full"
)

// Completenesses lists the levels in display order.
var Completenesses = []Completeness{Bare, CountOnly, TimeOnly, Full}

// SampleRecord returns a record carrying the fields named by c.
func SampleRecord(c Completeness) card.GuestRecord {
	r := card.GuestRecord{Name: "Guest", DateRange: "Oct 18 - Oct 21"}
	if c == CountOnly || c == Full {
		r.GuestCount = "2"
	}
	if c == TimeOnly || c == Full {
		r.TimeLabel = card.ETA
		r.Time = "14:00"
	}
	return r
}

// MatrixRow is one combination of the row selection matrix.
type MatrixRow struct {
	Category     card.Category `json:"category"`
	Priority     bool          `json:"priority"`
	Notes        bool          `json:"notes"`
	Completeness Completeness  `json:"completeness"`
	Set          Set           `json:"rows"`
}

// Matrix evaluates [Select] for every category, priority flag, notes flag and
// record completeness, without explicit time. Rows come out in a stable order.
func Matrix() []MatrixRow {
	out := make([]MatrixRow, 0, len(card.Categories)*2*2*len(Completenesses))
	for _, cat := range card.Categories {
		for _, priority := range []bool{false, true} {
			for _, notes := range []bool{false, true} {
				for _, comp := range Completenesses {
					ctx := card.Context{Category: cat, IsPriority: priority, HasNotes: notes}
					out = append(out, MatrixRow{
						Category:     cat,
						Priority:     priority,
						Notes:        notes,
						Completeness: comp,
						Set:          Select(ctx, SampleRecord(comp), false),
					})
				}
			}
		}
	}
	return out
}
