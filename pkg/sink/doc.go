// Package sink turns resolved plans into artifacts.
//
// Four outputs exist, one per pipeline format:
//
//   - [RenderJSON]: the plan document consumed by a rendering layer
//   - [ToDOT]: a Graphviz graph of what each element is positioned against
//   - [RenderSVG]: the DOT graph rendered by Graphviz
//   - [RenderPreview]: a wireframe SVG of each card, for eyeballing plans
//
// Sinks only read plans. They are safe to call concurrently.
package sink

import "github.com/matzehuels/guestcard/pkg/layout"

// Named is a plan with the ID of the deck entry it was resolved from.
type Named struct {
	ID   string      `json:"id"`
	Plan layout.Plan `json:"plan"`
}
