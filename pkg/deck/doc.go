// Package deck reads and writes decks: batches of guest cards to resolve.
//
// A deck is the input format of the CLI and the HTTP surface. Each entry
// pairs a [card.GuestRecord] with the [card.Context] of the card showing it
// and optional [card.Overrides]:
//
//	{
//	  "viewport_width": 390,
//	  "entries": [
//	    {
//	      "id": "101-a",
//	      "record": {"name": "Ana Silva", "date_range": "Oct 18 - Oct 21",
//	                 "guest_count": "2", "time_label": "ETA", "time": "14:00"},
//	      "context": {"category": "arrival"},
//	      "overrides": {"container_left": 90}
//	    }
//	  ]
//	}
//
// The same structure is accepted as TOML, using [[entries]] tables. [Load]
// and [Save] pick the format from the file extension.
//
// # Validation
//
// Decoding rejects unknown fields, unknown categories, time labels and
// slots, out-of-range viewport widths, unsafe entry IDs and duplicate IDs.
// Errors carry a code from [github.com/matzehuels/guestcard/pkg/errors] and
// name the offending entry.
//
// Entries without an ID receive a name-based UUID derived from their index
// and guest name, so the same deck always yields the same IDs.
package deck
