// Package layout resolves the position and stacking order of every element
// of a guest card.
//
// # Overview
//
// [Resolve] is the single entry point of the card layout engine. It takes a
// [card.GuestRecord], the [card.Context] of the hosting card, optional
// [card.Overrides] and the current viewport width, and returns a [Plan]: a
// flat, renderer-agnostic list of placed elements.
//
//	plan := layout.Resolve(rec, ctx, nil, 390)
//	for _, el := range plan.PaintOrder() {
//	    draw(el.Kind, el.X, el.Y, el.Text, el.Icon)
//	}
//
// Resolution is a pure function: the same inputs always produce the same
// plan, no state is shared between calls, and nothing is logged or
// validated. Plans for many cards may be resolved concurrently.
//
// # Precedence
//
// Each element is resolved independently:
//
//  1. An override for the element, scaled by the element's factor.
//  2. The default from the offset table, keyed by priority, slot, notes and
//     category. Priority offsets beat notes offsets, which beat the
//     arrival-only offsets, which fall back to the standard offsets.
//
// Time and guest-count positions follow the resolved date row: inline
// elements share its top, a separate guest-count row sits one row height
// plus a gap below it. The time element always takes its top from the date
// row, even when its left is overridden.
//
// # Scale
//
// Container position uses the raw factor (grid geometry). Offsets inside
// the container, the container width and badge offsets use the normalized
// factor. See [scale.Factors].
//
// # Stacking
//
// Z-order is fixed by role: name row 50, time 40, inline guest count 30,
// date row 20, separate guest-count row 10.
package layout
