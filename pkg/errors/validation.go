package errors

import (
	"math"
	"strings"
	"unicode"

	"github.com/matzehuels/guestcard/pkg/card"
)

// MaxViewportWidth bounds accepted viewport widths. Wider values are almost
// certainly unit mistakes (pixels times device scale, millimetres).
const MaxViewportWidth = 10000

// maxEntryIDLength bounds entry identifiers in decks and requests.
const maxEntryIDLength = 128

// ValidateCategory checks a category name as found in a deck or request.
// The empty name is accepted and means unspecified.
func ValidateCategory(c card.Category) error {
	if c.Valid() {
		return nil
	}
	return New(ErrCodeInvalidCategory, "unknown category %q", string(c))
}

// ValidateTimeLabel checks a time label. The empty label means no time.
func ValidateTimeLabel(l card.TimeLabel) error {
	if l.Valid() {
		return nil
	}
	return New(ErrCodeInvalidTimeLabel, "unknown time label %q (want ETA or EDT)", string(l))
}

// ValidateSlot checks a guest slot. The empty slot behaves as first.
func ValidateSlot(s card.Slot) error {
	switch s {
	case "", card.First, card.Second:
		return nil
	}
	return New(ErrCodeInvalidSlot, "unknown slot %q (want first or second)", string(s))
}

// ValidateViewport checks a viewport width in device units.
func ValidateViewport(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return New(ErrCodeInvalidViewport, "viewport width must be a finite number")
	}
	if w <= 0 {
		return New(ErrCodeInvalidViewport, "viewport width must be positive, got %g", w)
	}
	if w > MaxViewportWidth {
		return New(ErrCodeInvalidViewport, "viewport width too large (max %d), got %g", MaxViewportWidth, w)
	}
	return nil
}

// ValidateEntryID validates an entry identifier for safety.
// IDs end up in cache keys and output file names, so the rules are
// conservative:
//   - Maximum length of 128 characters
//   - No control characters or whitespace
//   - No path separators or traversal sequences
//
// The empty ID is accepted; decks assign one.
func ValidateEntryID(id string) error {
	if id == "" {
		return nil
	}
	if len(id) > maxEntryIDLength {
		return New(ErrCodeInvalidDeck, "entry id too long (max %d characters)", maxEntryIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidDeck, "entry id %q contains whitespace or control characters", id)
		}
	}
	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return New(ErrCodeInvalidDeck, "entry id %q contains path characters", id)
	}
	return nil
}

// ValidateContext validates every enumerated field of a card context.
func ValidateContext(ctx card.Context) error {
	if err := ValidateCategory(ctx.Category); err != nil {
		return err
	}
	return ValidateSlot(ctx.Slot)
}

// ValidateRecord validates the enumerated fields of a guest record.
func ValidateRecord(rec card.GuestRecord) error {
	return ValidateTimeLabel(rec.TimeLabel)
}
