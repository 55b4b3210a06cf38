package cli

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/pkg/deck"
	"github.com/matzehuels/guestcard/pkg/pipeline"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	output   string  // output file (single format), base path, or "-" for stdout
	formats  string  // comma-separated formats; empty uses the config
	viewport float64 // overrides the deck's viewport width
	workers  int
	noCache  bool
	refresh  bool
	rows     bool // include row selection in the JSON output
	detailed bool // coordinates in DOT/SVG labels
}

func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve [deck]",
		Short: "Resolve every card of a deck and write the layout plans",
		Long: `Resolve every card of a deck file (.json or .toml) and render the plans.

Formats:
  json     plan per card, elements in paint order
  dot      Graphviz source of the card structure
  svg      the DOT graph rendered by Graphviz
  preview  wireframe SVG of every card at its device-space positions`,
		Example: `  guestcard sample -o deck.json
  guestcard resolve deck.json --viewport 440 -f json,preview`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): json, dot, svg, preview (comma-separated)")
	cmd.Flags().Float64Var(&opts.viewport, "viewport", 0, "viewport width in device pixels (default: deck, then config)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel card resolution (default: config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&opts.rows, "rows", false, "include the row selection in JSON output")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show coordinates in DOT and SVG labels")

	return cmd
}

func (c *CLI) runResolve(ctx context.Context, input string, opts resolveOpts) error {
	d, err := deck.Load(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.pipelineOptions(opts.viewport)
	if opts.viewport == 0 && d.ViewportWidth == 0 {
		popts.ViewportWidth = c.Config.ViewportWidth
	}
	if opts.formats != "" {
		popts.Formats = pipeline.ParseFormats(opts.formats)
	}
	if opts.workers > 0 {
		popts.Workers = opts.workers
	}
	popts.Refresh = opts.refresh
	popts.Rows = opts.rows
	popts.Detailed = opts.detailed

	toStdout := opts.output == "-"
	if toStdout && len(popts.Formats) != 1 {
		return fmt.Errorf("--output - needs exactly one format, got %d", len(popts.Formats))
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Resolving %d cards...", d.Len()))
	if !toStdout {
		spinner.Start()
	}
	st := newStage(c.Logger, "resolve", "deck", input, "viewport", popts.ViewportWidth)
	result, err := runner.Execute(ctx, d, popts)
	spinner.Stop()
	if err != nil {
		return err
	}
	st.done("cards", result.Stats.Entries, "cached", result.CacheInfo.Hits)

	if toStdout {
		_, err := os.Stdout.Write(result.Artifacts[popts.Formats[0]])
		return err
	}

	paths := outputPaths(opts.output, input, popts.Formats)
	printSuccess("Resolved %s", StyleHighlight.Render(input))
	fmt.Println(statsLine(result.Stats.Entries, result.Stats.Visible, result.CacheInfo.Hits))
	for _, format := range popts.Formats {
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		printFile(paths[format])
	}
	return nil
}

// outputPaths maps each format to its file. A single format with an
// explicit output writes exactly there; otherwise files share a base path
// derived from output or input and take the format's extension.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + pipeline.Extensions[f]
	}
	return paths
}

// basePath strips any known output or deck extension.
func basePath(output, input string) string {
	p := output
	if p == "" {
		p = input
	}
	exts := slices.Collect(maps.Values(pipeline.Extensions))
	slices.SortFunc(exts, func(a, b string) int { return len(b) - len(a) })
	for _, ext := range exts {
		if strings.HasSuffix(p, ext) {
			return strings.TrimSuffix(p, ext)
		}
	}
	if ext := filepath.Ext(p); ext == ".json" || ext == ".toml" {
		return strings.TrimSuffix(p, ext)
	}
	return p
}
