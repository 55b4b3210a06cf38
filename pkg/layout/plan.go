package layout

import (
	"slices"

	"github.com/matzehuels/guestcard/pkg/rows"
	"github.com/matzehuels/guestcard/pkg/scale"
)

// Kind identifies a card element.
type Kind string

// Element kinds, in plan order.
const (
	KindIcon           Kind = "icon"
	KindName           Kind = "name"
	KindBadge          Kind = "badge"
	KindDateRange      Kind = "date_range"
	KindTime           Kind = "time"
	KindGuestCountIcon Kind = "guest_count_icon"
	KindGuestCountText Kind = "guest_count_text"
)

// Kinds lists every element kind in plan order.
var Kinds = []Kind{KindIcon, KindName, KindBadge, KindDateRange, KindTime, KindGuestCountIcon, KindGuestCountText}

// Stacking order by role. Higher paints later.
const (
	ZNameRow       = 50
	ZTime          = 40
	ZCountInline   = 30
	ZDateRow       = 20
	ZCountSeparate = 10
)

// Icon handles. The rendering layer maps them to image resources.
const (
	IconArrival          = "icon/arrival"
	IconDeparture        = "icon/departure"
	IconStayover         = "icon/stayover"
	IconTurndown         = "icon/turndown"
	IconArrivalDeparture = "icon/arrival-departure"
	IconGuest            = "icon/guest"
	IconGuests           = "icon/guests"
	BadgePriority        = "badge/priority"
)

// Element is one placed element of a card. X and Y are device-space
// coordinates relative to the container.
type Element struct {
	Kind    Kind    `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Z       int     `json:"z"`
	Visible bool    `json:"visible"`
	Text    string  `json:"text,omitempty"`
	Icon    string  `json:"icon,omitempty"`
}

// Container is the device-space box holding the card content.
type Container struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Absolute bool    `json:"absolute,omitempty"`
}

// Plan is the resolved layout of one card instance. A Plan is never
// modified after [Resolve] returns it.
type Plan struct {
	Scale     scale.Factors `json:"scale"`
	Container Container     `json:"container"`
	Rows      rows.Set      `json:"rows"`
	Layer     Layer         `json:"layer"`
	Elements  []Element     `json:"elements"`
}

// Element returns the element of the given kind.
func (p Plan) Element(k Kind) (Element, bool) {
	for _, el := range p.Elements {
		if el.Kind == k {
			return el, true
		}
	}
	return Element{}, false
}

// Visible returns the visible elements in plan order.
func (p Plan) Visible() []Element {
	out := make([]Element, 0, len(p.Elements))
	for _, el := range p.Elements {
		if el.Visible {
			out = append(out, el)
		}
	}
	return out
}

// PaintOrder returns the visible elements sorted by ascending Z. Elements
// with equal Z keep plan order.
func (p Plan) PaintOrder() []Element {
	out := p.Visible()
	slices.SortStableFunc(out, func(a, b Element) int { return a.Z - b.Z })
	return out
}
