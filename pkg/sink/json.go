package sink

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/guestcard/pkg/layout"
	"github.com/matzehuels/guestcard/pkg/rows"
	"github.com/matzehuels/guestcard/pkg/scale"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	viewport float64
	rows     bool
	hidden   bool
}

// WithViewport records the viewport width the plans were resolved for.
func WithViewport(w float64) JSONOption { return func(r *jsonRenderer) { r.viewport = w } }

// WithRows includes the row selection of every card.
func WithRows() JSONOption { return func(r *jsonRenderer) { r.rows = true } }

// WithHidden keeps invisible elements in the output. By default only
// visible elements are written.
func WithHidden() JSONOption { return func(r *jsonRenderer) { r.hidden = true } }

type jsonOutput struct {
	ViewportWidth float64    `json:"viewport_width,omitempty"`
	Cards         []jsonCard `json:"cards"`
}

type jsonCard struct {
	ID        string           `json:"id"`
	Layer     layout.Layer     `json:"layer"`
	Scale     scale.Factors    `json:"scale"`
	Container layout.Container `json:"container"`
	Rows      *rows.Set        `json:"rows,omitempty"`
	Elements  []jsonElement    `json:"elements"`
}

type jsonElement struct {
	Kind   layout.Kind `json:"kind"`
	X      float64     `json:"x"`
	Y      float64     `json:"y"`
	Z      int         `json:"z"`
	Hidden bool        `json:"hidden,omitempty"`
	Text   string      `json:"text,omitempty"`
	Icon   string      `json:"icon,omitempty"`
}

// RenderJSON writes plans as a pretty-printed JSON document. Elements are
// listed in paint order so a renderer can draw them as they come. Cards
// keep the order of plans.
func RenderJSON(plans []Named, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		ViewportWidth: r.viewport,
		Cards:         make([]jsonCard, 0, len(plans)),
	}
	for _, p := range plans {
		out.Cards = append(out.Cards, r.card(p))
	}
	return json.MarshalIndent(out, "", "  ")
}

func (r jsonRenderer) card(n Named) jsonCard {
	c := jsonCard{
		ID:        n.ID,
		Layer:     n.Plan.Layer,
		Scale:     n.Plan.Scale,
		Container: n.Plan.Container,
		Elements:  []jsonElement{},
	}
	if r.rows {
		set := n.Plan.Rows
		c.Rows = &set
	}

	elements := n.Plan.PaintOrder()
	if r.hidden {
		elements = paintOrderAll(n.Plan)
	}
	for _, el := range elements {
		c.Elements = append(c.Elements, jsonElement{
			Kind:   el.Kind,
			X:      el.X,
			Y:      el.Y,
			Z:      el.Z,
			Hidden: !el.Visible,
			Text:   el.Text,
			Icon:   el.Icon,
		})
	}
	return c
}

// paintOrderAll sorts every element, visible or not, by Z.
func paintOrderAll(p layout.Plan) []layout.Element {
	out := slices.Clone(p.Elements)
	slices.SortStableFunc(out, func(a, b layout.Element) int { return a.Z - b.Z })
	return out
}
