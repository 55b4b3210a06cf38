package layout

import (
	"github.com/matzehuels/guestcard/pkg/card"
	"github.com/matzehuels/guestcard/pkg/rows"
	"github.com/matzehuels/guestcard/pkg/scale"
)

// Resolve computes the layout plan of one guest card for a viewport width.
// ov may be nil. Resolve never fails and never validates its inputs;
// malformed overrides pass through unchanged.
func Resolve(rec card.GuestRecord, ctx card.Context, ov *card.Overrides, viewportWidth float64) Plan {
	return ResolveWith(rec, ctx, ov, scale.ForViewport(viewportWidth))
}

// ResolveWith is Resolve with precomputed scale factors.
func ResolveWith(rec card.GuestRecord, ctx card.Context, ov *card.Overrides, f scale.Factors) Plan {
	if ov == nil {
		ov = &card.Overrides{}
	}
	set := rows.Select(ctx, rec, ov.HasTime())
	off := offsetsFor(ctx)

	r := resolver{rec: rec, ctx: ctx, ov: ov, f: f, off: off, set: set}
	return Plan{
		Scale:     f,
		Container: r.container(),
		Rows:      set,
		Layer:     off.Layer,
		Elements:  r.elements(),
	}
}

type resolver struct {
	rec card.GuestRecord
	ctx card.Context
	ov  *card.Overrides
	f   scale.Factors
	off Offsets
	set rows.Set
}

func (r resolver) container() Container {
	left, top := r.off.ContainerLeft, r.off.ContainerTop
	switch {
	case r.ov.Container != nil:
		left, top = r.ov.Container.Left, r.ov.Container.Top
	default:
		if r.ov.ContainerLeft != nil {
			left = *r.ov.ContainerLeft
		}
		if r.ov.AbsolutePositioning && r.ov.AbsoluteTop != nil {
			top = *r.ov.AbsoluteTop
		}
	}
	return Container{
		X:        r.f.Geometry(left),
		Y:        r.f.Geometry(top),
		Width:    r.f.Spacing(CardWidth - left),
		Absolute: r.ov.AbsolutePositioning,
	}
}

func (r resolver) elements() []Element {
	date := pick(r.ov.Date, card.Point{Left: r.off.DateLeft, Top: r.off.DateTop})

	// The time shares the date row. Its left may be overridden; its top
	// always follows the resolved date row.
	timeAt := card.Point{Left: r.off.TimeLeft, Top: date.Top}
	if r.ov.Time != nil {
		timeAt.Left = r.ov.Time.Left
	}

	countDefault := card.Point{Left: date.Left, Top: date.Top + DateRowHeight + RowGap}
	countZ := ZCountSeparate
	if r.set.CountInline() {
		countDefault = card.Point{Left: r.off.CountInlineLeft, Top: date.Top}
		countZ = ZCountInline
	}
	countIcon := pick(r.ov.GuestCountIcon, countDefault)
	countText := pick(r.ov.GuestCountText, card.Point{
		Left: countIcon.Left + CountIconSize + CountTextGap,
		Top:  countIcon.Top,
	})

	countVisible := r.set.GuestCount != rows.Hidden

	return []Element{
		r.place(KindIcon, pick(r.ov.Icon, r.off.Icon), ZNameRow, r.set.Name, "", categoryIcon(r.ctx.Category)),
		r.place(KindName, pick(r.ov.Name, r.off.Name), ZNameRow, r.set.Name, r.rec.Name, ""),
		r.place(KindBadge, pick(r.ov.Badge, r.off.Badge), ZNameRow, r.set.Badge, "", BadgePriority),
		r.place(KindDateRange, date, ZDateRow, true, r.rec.DateRange, ""),
		r.place(KindTime, timeAt, ZTime, r.set.TimeVisible(), r.rec.TimeText(), ""),
		r.place(KindGuestCountIcon, countIcon, countZ, countVisible, "", IconGuests),
		r.place(KindGuestCountText, countText, countZ, countVisible, r.rec.GuestCount, ""),
	}
}

func (r resolver) place(k Kind, at card.Point, z int, visible bool, text, icon string) Element {
	return Element{
		Kind:    k,
		X:       r.f.Spacing(at.Left),
		Y:       r.f.Spacing(at.Top),
		Z:       z,
		Visible: visible,
		Text:    text,
		Icon:    icon,
	}
}

// pick returns the override when present, the default otherwise. Both
// coordinates always come from the same source.
func pick(override *card.Point, def card.Point) card.Point {
	if override != nil {
		return *override
	}
	return def
}

func categoryIcon(c card.Category) string {
	switch c {
	case card.Arrival:
		return IconArrival
	case card.Departure:
		return IconDeparture
	case card.Stayover:
		return IconStayover
	case card.Turndown:
		return IconTurndown
	case card.ArrivalDeparture:
		return IconArrivalDeparture
	default:
		return IconGuest
	}
}
