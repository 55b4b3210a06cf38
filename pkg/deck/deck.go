package deck

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/guestcard/pkg/card"
	"github.com/matzehuels/guestcard/pkg/errors"
)

// Entry is one card to resolve.
type Entry struct {
	ID        string           `json:"id,omitempty" toml:"id,omitempty"`
	Record    card.GuestRecord `json:"record" toml:"record"`
	Context   card.Context     `json:"context" toml:"context"`
	Overrides *card.Overrides  `json:"overrides,omitempty" toml:"overrides,omitempty"`
}

// Deck is a batch of entries sharing one viewport width. A zero width
// leaves the choice to the caller.
type Deck struct {
	ViewportWidth float64 `json:"viewport_width,omitempty" toml:"viewport_width,omitempty"`
	Entries       []Entry `json:"entries" toml:"entries"`
}

var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/guestcard/deck"))

// EntryID returns the generated ID of the entry at index i.
func EntryID(i int, name string) string {
	return uuid.NewSHA1(idNamespace, []byte(strconv.Itoa(i)+"/"+name)).String()
}

// AssignIDs gives every entry without an ID a generated one.
func (d *Deck) AssignIDs() {
	for i := range d.Entries {
		if d.Entries[i].ID == "" {
			d.Entries[i].ID = EntryID(i, d.Entries[i].Record.Name)
		}
	}
}

// Validate checks the viewport and every entry. Entry IDs must be unique
// once assigned.
func (d *Deck) Validate() error {
	if d.ViewportWidth != 0 {
		if err := errors.ValidateViewport(d.ViewportWidth); err != nil {
			return err
		}
	}
	seen := make(map[string]int, len(d.Entries))
	for i, e := range d.Entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if e.ID == "" {
			continue
		}
		if j, dup := seen[e.ID]; dup {
			return errors.New(errors.ErrCodeInvalidDeck, "entries %d and %d share id %q", j, i, e.ID)
		}
		seen[e.ID] = i
	}
	return nil
}

// Validate checks the enumerated fields and the ID of an entry.
func (e Entry) Validate() error {
	if err := errors.ValidateEntryID(e.ID); err != nil {
		return err
	}
	if err := errors.ValidateRecord(e.Record); err != nil {
		return err
	}
	return errors.ValidateContext(e.Context)
}

// Len returns the number of entries.
func (d *Deck) Len() int { return len(d.Entries) }
