package errors

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/guestcard/pkg/card"
)

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   card.Category
		wantErr bool
	}{
		{"arrival", card.Arrival, false},
		{"arrival departure", card.ArrivalDeparture, false},
		{"unspecified", card.Unspecified, false},

		{"unknown", "spa", true},
		{"wrong case", "Arrival", true},
		{"display name", "arrival-departure", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCategory) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidCategory)
			}
		})
	}
}

func TestValidateTimeLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   card.TimeLabel
		wantErr bool
	}{
		{"none", card.NoTime, false},
		{"eta", card.ETA, false},
		{"edt", card.EDT, false},

		{"lowercase", "eta", true},
		{"unknown", "ETD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTimeLabel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTimeLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSlot(t *testing.T) {
	for _, s := range []card.Slot{"", card.First, card.Second} {
		if err := ValidateSlot(s); err != nil {
			t.Errorf("ValidateSlot(%q) = %v", s, err)
		}
	}
	if err := ValidateSlot("third"); !Is(err, ErrCodeInvalidSlot) {
		t.Errorf("ValidateSlot(third) = %v, want %v", err, ErrCodeInvalidSlot)
	}
}

func TestValidateViewport(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"phone", 390, false},
		{"reference", 440, false},
		{"max", MaxViewportWidth, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", MaxViewportWidth + 1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateViewport(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateViewport(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEntryID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"room", "101-a", false},
		{"uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", false},
		{"dotted", "wing.b.204", false},

		{"too long", strings.Repeat("x", 129), true},
		{"space", "101 a", true},
		{"newline", "101\na", true},
		{"null byte", "101\x00", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"traversal", "..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntryID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEntryID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateContext(t *testing.T) {
	if err := ValidateContext(card.Context{Category: card.Departure, Slot: card.Second}); err != nil {
		t.Errorf("ValidateContext() = %v", err)
	}
	if err := ValidateContext(card.Context{Category: "spa"}); !Is(err, ErrCodeInvalidCategory) {
		t.Errorf("ValidateContext(spa) = %v", err)
	}
	if err := ValidateContext(card.Context{Slot: "third"}); !Is(err, ErrCodeInvalidSlot) {
		t.Errorf("ValidateContext(third) = %v", err)
	}
}

func TestValidateRecord(t *testing.T) {
	if err := ValidateRecord(card.GuestRecord{TimeLabel: card.ETA, Time: "14:00"}); err != nil {
		t.Errorf("ValidateRecord() = %v", err)
	}
	if err := ValidateRecord(card.GuestRecord{TimeLabel: "XYZ"}); !Is(err, ErrCodeInvalidTimeLabel) {
		t.Errorf("ValidateRecord(XYZ) = %v", err)
	}
}
