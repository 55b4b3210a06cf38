package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/guestcard/pkg/observability"
	"github.com/matzehuels/guestcard/pkg/sink"
)

// RenderArtifacts renders plans in each of formats without caching.
func RenderArtifacts(ctx context.Context, plans []EntryPlan, formats []string, opts Options) (map[string][]byte, error) {
	observability.Pipeline().OnRenderStart(ctx, formats)
	start := time.Now()

	out, err := renderArtifacts(ctx, Named(plans), formats, opts)

	observability.Pipeline().OnRenderComplete(ctx, formats, time.Since(start), err)
	return out, err
}

func renderArtifacts(ctx context.Context, named []sink.Named, formats []string, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(formats))

	var dot string
	dotFor := func() string {
		if dot == "" {
			dot = sink.ToDOT(named, sink.DOTOptions{Detailed: opts.Detailed})
		}
		return dot
	}

	for _, format := range formats {
		if err := ValidateFormat(format); err != nil {
			return nil, err
		}
		switch format {
		case FormatJSON:
			jsonOpts := []sink.JSONOption{sink.WithViewport(opts.ViewportWidth)}
			if opts.Rows {
				jsonOpts = append(jsonOpts, sink.WithRows())
			}
			data, err := sink.RenderJSON(named, jsonOpts...)
			if err != nil {
				return nil, err
			}
			out[format] = data
		case FormatDOT:
			out[format] = []byte(dotFor())
		case FormatSVG:
			data, err := sink.RenderSVG(ctx, dotFor())
			if err != nil {
				return nil, err
			}
			out[format] = data
		case FormatPreview:
			previewOpts := []sink.PreviewOption{sink.WithLabels()}
			if opts.Detailed {
				previewOpts = append(previewOpts, sink.WithGhosts())
			}
			out[format] = sink.RenderPreview(named, previewOpts...)
		}
	}
	return out, nil
}

// Named converts entry plans for the sinks.
func Named(plans []EntryPlan) []sink.Named {
	out := make([]sink.Named, len(plans))
	for i, p := range plans {
		out[i] = sink.Named{ID: p.ID, Plan: p.Plan}
	}
	return out
}
