// Package rows decides which logical rows of a guest card exist.
//
// A card has at most four rows: the name row (with its inline icon and the
// priority badge), the date row, the time and the guest count. Horizontal
// space differs between card shapes, so the time and the guest count either
// share the date row ("inline") or sit on their own line beneath it
// ("separate"). [Select] applies the shape rules in a fixed order; the first
// rule that matches wins:
//
//  1. ArrivalDeparture priority cards pack the guest count inline.
//  2. Departure cards without notes pack the guest count inline and drop the
//     time, unless the caller positions the time explicitly.
//  3. Arrival, Stayover and Turndown records with a time put the time on the
//     date row and the guest count on a separate row.
//  4. Anything else shows the date row alone, with the guest count on a
//     separate row.
//
// A guest count is never placed both inline and separately.
package rows

import "github.com/matzehuels/guestcard/pkg/card"

// Placement says where an optional element is drawn relative to the date row.
type Placement int

// Placements.
const (
	Hidden Placement = iota
	Inline
	Separate
)

// String returns the placement name.
func (p Placement) String() string {
	switch p {
	case Inline:
		return "inline"
	case Separate:
		return "separate"
	default:
		return "hidden"
	}
}

// MarshalText encodes the placement by name.
func (p Placement) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText decodes a placement name. Unknown names decode as Hidden.
func (p *Placement) UnmarshalText(b []byte) error {
	switch string(b) {
	case "inline":
		*p = Inline
	case "separate":
		*p = Separate
	default:
		*p = Hidden
	}
	return nil
}

// Rule identifies which selection rule produced a [Set].
type Rule int

// Rules in evaluation order.
const (
	RulePriorityArrivalDeparture Rule = iota + 1
	RuleDeparture
	RuleTimedStay
	RuleDefault
)

var ruleNames = map[Rule]string{
	RulePriorityArrivalDeparture: "priority-arrival-departure",
	RuleDeparture:                "departure",
	RuleTimedStay:                "timed-stay",
	RuleDefault:                  "default",
}

// String returns a short rule name.
func (r Rule) String() string {
	if s, ok := ruleNames[r]; ok {
		return s
	}
	return "unknown"
}

// MarshalText encodes the rule by name.
func (r Rule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes a rule name.
func (r *Rule) UnmarshalText(b []byte) error {
	for rule, name := range ruleNames {
		if name == string(b) {
			*r = rule
			return nil
		}
	}
	*r = 0
	return nil
}

// Set is the row selection for one card instance.
type Set struct {
	Name       bool      `json:"name"`
	Badge      bool      `json:"badge"`
	Time       Placement `json:"time"`
	GuestCount Placement `json:"guest_count"`
	Rule       Rule      `json:"rule"`
}

// CountInline reports whether the guest count shares the date row.
func (s Set) CountInline() bool { return s.GuestCount == Inline }

// CountSeparate reports whether the guest count has its own row.
func (s Set) CountSeparate() bool { return s.GuestCount == Separate }

// TimeVisible reports whether the time is drawn.
func (s Set) TimeVisible() bool { return s.Time != Hidden }

// Select applies the row rules to a card context and record.
// explicitTime is true when the caller supplies its own time position.
func Select(ctx card.Context, rec card.GuestRecord, explicitTime bool) Set {
	s := Set{Name: !ctx.HideNameRow}
	s.Badge = s.Name && ctx.IsPriority && ctx.GuestSlot() == card.First

	inlineCount := Hidden
	if rec.HasGuestCount() {
		inlineCount = Inline
	}
	separateCount := Hidden
	if rec.HasGuestCount() {
		separateCount = Separate
	}

	switch {
	case ctx.Category == card.ArrivalDeparture && ctx.IsPriority:
		s.Rule = RulePriorityArrivalDeparture
		s.GuestCount = inlineCount
	case ctx.Category == card.Departure && !ctx.HasNotes && !explicitTime:
		s.Rule = RuleDeparture
		s.GuestCount = inlineCount
	case hasTimedLayout(ctx.Category) && rec.HasTime():
		s.Rule = RuleTimedStay
		s.Time = Inline
		s.GuestCount = separateCount
	default:
		s.Rule = RuleDefault
		s.GuestCount = separateCount
		if explicitTime && rec.HasTime() {
			s.Time = Inline
		}
	}
	return s
}

func hasTimedLayout(c card.Category) bool {
	return c == card.Arrival || c == card.Stayover || c == card.Turndown
}
