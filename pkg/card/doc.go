// Package card defines the inputs of the guest card layout engine.
//
// # Overview
//
// A room card in the operations app shows one guest (or two, for priority
// cards) with a name row, a date range, an optional ETA/EDT time and an
// optional guest count. The same display unit serves every card shape, so
// everything that varies between shapes is described by three values:
//
//   - [GuestRecord]: what is shown (name, dates, count, time)
//   - [Context]: which card shape hosts the record
//   - [Overrides]: explicit positions supplied by a caller with its own grid
//
// All three are plain values. The engine reads them and never mutates them;
// a caller constructs fresh values per render pass.
//
// # Categories
//
// The card category drives the row rules in [rows] and the default offsets
// in [layout]:
//
//	card.Arrival, card.Departure, card.Stayover, card.Turndown,
//	card.ArrivalDeparture, card.Unspecified
//
// # Overrides
//
// Position overrides are given per element as a [Point]. A Point always
// carries both coordinates, so the left and top of one element can never be
// taken from two different sources. A nil Point falls through to the
// computed default.
//
//	ov := &card.Overrides{
//	    ContainerLeft: card.Float(90),
//	    Name:          &card.Point{Left: 24, Top: 0},
//	}
//
// [rows]: github.com/matzehuels/guestcard/pkg/rows
// [layout]: github.com/matzehuels/guestcard/pkg/layout
package card
