package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/guestcard/pkg/layout"
)

// Preview geometry in device units.
const (
	previewMargin    = 16.0
	previewGap       = 12.0
	previewRowHeight = 18.0
	previewIconSize  = 14.0
	previewFontSize  = 12.0
	previewFont      = "Helvetica, Arial, sans-serif"
)

// PreviewOption configures [RenderPreview].
type PreviewOption func(*previewRenderer)

type previewRenderer struct {
	labels bool
	hidden bool
}

// WithLabels writes the entry ID above each card.
func WithLabels() PreviewOption { return func(r *previewRenderer) { r.labels = true } }

// WithGhosts draws invisible elements as faint outlines.
func WithGhosts() PreviewOption { return func(r *previewRenderer) { r.hidden = true } }

// RenderPreview draws every plan as a wireframe card, stacked vertically.
// Text elements are drawn as text, icon elements as labelled squares, in
// paint order.
func RenderPreview(plans []Named, opts ...PreviewOption) []byte {
	r := previewRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	width := 0.0
	for _, n := range plans {
		width = max(width, cardWidth(n.Plan))
	}
	width += 2 * previewMargin

	var body bytes.Buffer
	y := previewMargin
	for _, n := range plans {
		if r.labels {
			fmt.Fprintf(&body, "  <text x=\"%.1f\" y=\"%.1f\" font-family=%q font-size=\"10\" fill=\"#888\">%s</text>\n",
				previewMargin, y+10, previewFont, escapeXML(n.ID))
			y += 14
		}
		h := cardHeight(n.Plan)
		r.renderCard(&body, n, previewMargin, y, h)
		y += h + previewGap
	}
	height := y - previewGap + previewMargin
	if len(plans) == 0 {
		height = 2 * previewMargin
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r previewRenderer) renderCard(buf *bytes.Buffer, n Named, x, y, h float64) {
	p := n.Plan
	fmt.Fprintf(buf, "  <g id=\"card-%s\" data-layer=%q>\n", escapeXML(n.ID), string(p.Layer))
	fmt.Fprintf(buf, "    <rect class=\"card\" x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"6\" fill=\"white\" stroke=\"#333\"/>\n",
		x, y, cardWidth(p), h)

	cx, cy := x+p.Container.X, y+p.Container.Y
	fmt.Fprintf(buf, "    <rect class=\"container\" x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"none\" stroke=\"#9cf\" stroke-dasharray=\"4 2\"/>\n",
		cx, cy, max(p.Container.Width, 0), h-p.Container.Y)

	elements := p.PaintOrder()
	if r.hidden {
		elements = paintOrderAll(p)
	}
	for _, el := range elements {
		renderElement(buf, el, cx, cy)
	}
	buf.WriteString("  </g>\n")
}

func renderElement(buf *bytes.Buffer, el layout.Element, cx, cy float64) {
	x, y := cx+el.X, cy+el.Y
	opacity := "1"
	if !el.Visible {
		opacity = "0.25"
	}
	if el.Icon != "" {
		fmt.Fprintf(buf, "    <rect class=%q x=\"%.1f\" y=\"%.1f\" width=\"%.0f\" height=\"%.0f\" fill=\"#eee\" stroke=\"#666\" opacity=\"%s\"><title>%s</title></rect>\n",
			string(el.Kind), x, y, previewIconSize, previewIconSize, opacity, escapeXML(el.Icon))
		return
	}
	fmt.Fprintf(buf, "    <text class=%q x=\"%.1f\" y=\"%.1f\" font-family=%q font-size=\"%.0f\" dominant-baseline=\"hanging\" opacity=\"%s\">%s</text>\n",
		string(el.Kind), x, y, previewFont, previewFontSize, opacity, escapeXML(el.Text))
}

// cardWidth is the frame around the container.
func cardWidth(p layout.Plan) float64 {
	return p.Container.X + max(p.Container.Width, 0) + previewMargin
}

// cardHeight fits the lowest element plus one row.
func cardHeight(p layout.Plan) float64 {
	bottom := 0.0
	for _, el := range p.Elements {
		bottom = max(bottom, el.Y)
	}
	return p.Container.Y + bottom + previewRowHeight + previewMargin/2
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
