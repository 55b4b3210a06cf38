package card

// =============================================================================
// Enumerations
// =============================================================================

// Category is the semantic class of a room card.
type Category string

// Card categories. Unspecified is the zero value.
const (
	Unspecified      Category = ""
	Arrival          Category = "arrival"
	Departure        Category = "departure"
	Stayover         Category = "stayover"
	Turndown         Category = "turndown"
	ArrivalDeparture Category = "arrival_departure"
)

// Categories lists every category in a stable order, Unspecified last.
var Categories = []Category{Arrival, Departure, Stayover, Turndown, ArrivalDeparture, Unspecified}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Unspecified, Arrival, Departure, Stayover, Turndown, ArrivalDeparture:
		return true
	}
	return false
}

// String returns the category name, or "unspecified" for the zero value.
func (c Category) String() string {
	if c == Unspecified {
		return "unspecified"
	}
	return string(c)
}

// Slot selects which of the two guests of a priority card is described.
type Slot string

// Guest slots. An empty slot behaves as First.
const (
	First  Slot = "first"
	Second Slot = "second"
)

// Normalize maps an unset or unknown slot to First.
func (s Slot) Normalize() Slot {
	if s == Second {
		return Second
	}
	return First
}

// TimeLabel qualifies the optional time of a record.
type TimeLabel string

// Time labels. An empty label means the record carries no time.
const (
	NoTime TimeLabel = ""
	ETA    TimeLabel = "ETA"
	EDT    TimeLabel = "EDT"
)

// Valid reports whether l is empty, ETA or EDT.
func (l TimeLabel) Valid() bool {
	return l == NoTime || l == ETA || l == EDT
}

// =============================================================================
// GuestRecord
// =============================================================================

// GuestRecord is the per-guest data shown on a card.
type GuestRecord struct {
	Name       string    `json:"name" toml:"name"`
	DateRange  string    `json:"date_range" toml:"date_range"`
	GuestCount string    `json:"guest_count,omitempty" toml:"guest_count,omitempty"`
	TimeLabel  TimeLabel `json:"time_label,omitempty" toml:"time_label,omitempty"`
	Time       string    `json:"time,omitempty" toml:"time,omitempty"`
}

// HasTime reports whether both the time label and the time are present.
func (r GuestRecord) HasTime() bool {
	return r.TimeLabel != NoTime && r.Time != ""
}

// HasGuestCount reports whether the record has a non-empty guest count.
func (r GuestRecord) HasGuestCount() bool {
	return r.GuestCount != ""
}

// TimeText returns the display text of the time row, e.g. "ETA 14:00".
func (r GuestRecord) TimeText() string {
	if !r.HasTime() {
		return ""
	}
	return string(r.TimeLabel) + " " + r.Time
}

// =============================================================================
// Context
// =============================================================================

// Context describes the card instance hosting a record.
type Context struct {
	Category    Category `json:"category,omitempty" toml:"category,omitempty"`
	IsPriority  bool     `json:"priority,omitempty" toml:"priority,omitempty"`
	Slot        Slot     `json:"slot,omitempty" toml:"slot,omitempty"`
	HasNotes    bool     `json:"notes,omitempty" toml:"notes,omitempty"`
	HideNameRow bool     `json:"hide_name,omitempty" toml:"hide_name,omitempty"`
}

// GuestSlot returns the effective slot. Non-priority cards and priority cards
// without a slot both resolve to First.
func (c Context) GuestSlot() Slot {
	if !c.IsPriority {
		return First
	}
	return c.Slot.Normalize()
}

// =============================================================================
// Overrides
// =============================================================================

// Point is a design-space position relative to the card container.
type Point struct {
	Left float64 `json:"left" toml:"left"`
	Top  float64 `json:"top" toml:"top"`
}

// Overrides holds explicit positions that replace computed defaults.
// Every field is optional.
type Overrides struct {
	Container      *Point `json:"container,omitempty" toml:"container,omitempty"`
	Icon           *Point `json:"icon,omitempty" toml:"icon,omitempty"`
	Name           *Point `json:"name,omitempty" toml:"name,omitempty"`
	Badge          *Point `json:"badge,omitempty" toml:"badge,omitempty"`
	Date           *Point `json:"date,omitempty" toml:"date,omitempty"`
	Time           *Point `json:"time,omitempty" toml:"time,omitempty"`
	GuestCountIcon *Point `json:"guest_count_icon,omitempty" toml:"guest_count_icon,omitempty"`
	GuestCountText *Point `json:"guest_count_text,omitempty" toml:"guest_count_text,omitempty"`

	// ContainerLeft sets only the horizontal inset of the container.
	ContainerLeft *float64 `json:"container_left,omitempty" toml:"container_left,omitempty"`

	AbsolutePositioning bool     `json:"absolute,omitempty" toml:"absolute,omitempty"`
	AbsoluteTop         *float64 `json:"absolute_top,omitempty" toml:"absolute_top,omitempty"`
}

// HasTime reports whether an explicit time position was supplied.
// A nil receiver has no overrides.
func (o *Overrides) HasTime() bool {
	return o != nil && o.Time != nil
}

// IsZero reports whether o sets nothing.
func (o *Overrides) IsZero() bool {
	if o == nil {
		return true
	}
	return *o == Overrides{}
}

// Float returns a pointer to v, for building sparse overrides.
func Float(v float64) *float64 { return &v }
