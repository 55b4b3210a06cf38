package layout

import "github.com/matzehuels/guestcard/pkg/card"

// Card geometry in design units.
const (
	CardWidth     = 400.0
	DateRowHeight = 18.0
	RowGap        = 4.0
	CountIconSize = 14.0
	CountTextGap  = 4.0
)

// Key selects an entry of the offset table.
type Key struct {
	Priority bool
	Slot     card.Slot
	Notes    bool
	Category card.Category
}

// KeyFor returns the table key of a card context. The slot is normalized so
// that an unset slot behaves as First.
func KeyFor(ctx card.Context) Key {
	return Key{
		Priority: ctx.IsPriority,
		Slot:     ctx.Slot.Normalize(),
		Notes:    ctx.HasNotes,
		Category: ctx.Category,
	}
}

// Layer names the group of offsets a key resolved to.
type Layer string

// Offset layers in precedence order.
const (
	LayerPriorityFirst  Layer = "priority-first"
	LayerPrioritySecond Layer = "priority-second"
	LayerNotes          Layer = "notes"
	LayerArrival        Layer = "arrival"
	LayerStandard       Layer = "standard"
)

// Offsets is the set of default design-space positions for one card shape.
// Element points are relative to the container.
type Offsets struct {
	Layer Layer

	ContainerLeft float64
	ContainerTop  float64

	Icon  card.Point
	Name  card.Point
	Badge card.Point

	DateLeft float64
	DateTop  float64

	// TimeLeft and CountInlineLeft are the x positions of the time and the
	// inline guest count on the date row.
	TimeLeft        float64
	CountInlineLeft float64
}

var (
	standardOffsets = Offsets{
		Layer:           LayerStandard,
		ContainerLeft:   16,
		ContainerTop:    12,
		Icon:            card.Point{Left: 0, Top: 2},
		Name:            card.Point{Left: 22, Top: 0},
		DateLeft:        0,
		DateTop:         24,
		TimeLeft:        128,
		CountInlineLeft: 128,
	}

	arrivalOffsets = Offsets{
		Layer:           LayerArrival,
		ContainerLeft:   16,
		ContainerTop:    12,
		Icon:            card.Point{Left: 0, Top: 3},
		Name:            card.Point{Left: 24, Top: 0},
		DateLeft:        24,
		DateTop:         26,
		TimeLeft:        140,
		CountInlineLeft: 140,
	}

	notesOffsets = Offsets{
		Layer:           LayerNotes,
		ContainerLeft:   16,
		ContainerTop:    8,
		Icon:            card.Point{Left: 0, Top: 2},
		Name:            card.Point{Left: 22, Top: 0},
		DateLeft:        0,
		DateTop:         22,
		TimeLeft:        128,
		CountInlineLeft: 128,
	}

	priorityFirstOffsets = Offsets{
		Layer:           LayerPriorityFirst,
		ContainerLeft:   56,
		ContainerTop:    10,
		Icon:            card.Point{Left: 0, Top: 1},
		Name:            card.Point{Left: 20, Top: 0},
		Badge:           card.Point{Left: -44, Top: 0},
		DateLeft:        0,
		DateTop:         20,
		TimeLeft:        120,
		CountInlineLeft: 120,
	}

	prioritySecondOffsets = Offsets{
		Layer:           LayerPrioritySecond,
		ContainerLeft:   56,
		ContainerTop:    62,
		Icon:            card.Point{Left: 0, Top: 1},
		Name:            card.Point{Left: 20, Top: 0},
		Badge:           card.Point{Left: -44, Top: 0},
		DateLeft:        0,
		DateTop:         20,
		TimeLeft:        120,
		CountInlineLeft: 120,
	}
)

// table holds an explicit entry for every key. It is built once and only
// read afterwards.
var table = buildTable()

func buildTable() map[Key]Offsets {
	t := make(map[Key]Offsets, 2*2*2*len(card.Categories))
	for _, priority := range []bool{false, true} {
		for _, slot := range []card.Slot{card.First, card.Second} {
			for _, notes := range []bool{false, true} {
				for _, cat := range card.Categories {
					k := Key{Priority: priority, Slot: slot, Notes: notes, Category: cat}
					t[k] = layerFor(k)
				}
			}
		}
	}
	return t
}

func layerFor(k Key) Offsets {
	switch {
	case k.Priority && k.Slot == card.Second:
		return prioritySecondOffsets
	case k.Priority:
		return priorityFirstOffsets
	case k.Notes:
		return notesOffsets
	case k.Category == card.Arrival:
		return arrivalOffsets
	default:
		return standardOffsets
	}
}

// Lookup returns the default offsets for a key. Keys outside the table
// (an unknown category) report false.
func Lookup(k Key) (Offsets, bool) {
	o, ok := table[k]
	return o, ok
}

// Keys returns every key in the table, in no particular order.
func Keys() []Key {
	keys := make([]Key, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	return keys
}

func offsetsFor(ctx card.Context) Offsets {
	k := KeyFor(ctx)
	if o, ok := Lookup(k); ok {
		return o
	}
	return layerFor(k)
}
