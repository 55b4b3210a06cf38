package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/guestcard/pkg/layout"
)

// DOTOptions configures [ToDOT].
type DOTOptions struct {
	// Detailed adds coordinates and z-order to node labels.
	Detailed bool
	// SkipHidden leaves invisible elements out of the graph.
	SkipHidden bool
}

// ToDOT converts plans to a Graphviz digraph with one cluster per card.
//
// Each cluster has a container node with an edge to every element. Time and
// guest-count elements take their top from the date row, so the date row
// gets an extra "top" edge to each of them. Invisible elements are dashed.
// Nodes of equal z-order share a rank.
func ToDOT(plans []Named, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for i, n := range plans {
		writeCluster(&buf, i, n, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, i int, n Named, opts DOTOptions) {
	p := n.Plan
	id := func(k string) string { return fmt.Sprintf("%s/%s", n.ID, k) }

	fmt.Fprintf(buf, "\n  subgraph \"cluster_%d\" {\n", i)
	fmt.Fprintf(buf, "    label=%q;\n", fmt.Sprintf("%s (%s)", n.ID, p.Layer))

	containerLabel := "container"
	if opts.Detailed {
		containerLabel = fmt.Sprintf("container\nx=%.1f y=%.1f w=%.1f", p.Container.X, p.Container.Y, p.Container.Width)
	}
	fmt.Fprintf(buf, "    %q [label=%q, shape=folder, fillcolor=lightyellow];\n", id("container"), containerLabel)

	byZ := map[int][]string{}
	var edges []string
	for _, el := range p.Elements {
		if opts.SkipHidden && !el.Visible {
			continue
		}
		node := id(string(el.Kind))
		fmt.Fprintf(buf, "    %q [%s];\n", node, strings.Join(elementAttrs(el, opts.Detailed), ", "))
		byZ[el.Z] = append(byZ[el.Z], node)
		edges = append(edges, fmt.Sprintf("    %q -> %q;\n", id("container"), node))
	}

	date := id(string(layout.KindDateRange))
	for _, k := range []layout.Kind{layout.KindTime, layout.KindGuestCountIcon, layout.KindGuestCountText} {
		el, ok := p.Element(k)
		if !ok || (opts.SkipHidden && !el.Visible) {
			continue
		}
		edges = append(edges, fmt.Sprintf("    %q -> %q [label=\"top\", style=dotted];\n", date, id(string(k))))
	}

	for _, z := range []int{layout.ZNameRow, layout.ZTime, layout.ZCountInline, layout.ZDateRow, layout.ZCountSeparate} {
		if nodes := byZ[z]; len(nodes) > 1 {
			fmt.Fprintf(buf, "    { rank=same; %s }\n", quoteAll(nodes))
		}
	}
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("  }\n")
}

func elementAttrs(el layout.Element, detailed bool) []string {
	label := string(el.Kind)
	if el.Text != "" {
		label += "\n" + el.Text
	}
	if detailed {
		label += fmt.Sprintf("\n(%.1f, %.1f) z=%d", el.X, el.Y, el.Z)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if !el.Visible {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=grey40")
	}
	return attrs
}

func quoteAll(ids []string) string {
	q := make([]string, len(ids))
	for i, s := range ids {
		q[i] = fmt.Sprintf("%q;", s)
	}
	return strings.Join(q, " ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
