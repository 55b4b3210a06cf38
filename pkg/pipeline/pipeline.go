// Package pipeline resolves decks into plans and renders them into
// artifacts, with caching.
//
// This is the single batch path used by the CLI and the HTTP surface, so
// both produce identical output for identical input.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Resolve: run [layout.Resolve] for every deck entry, in parallel
//  2. Render: write the plans in each requested format (see [sink])
//
// Both stages consult the cache first. Plans are keyed by the entry content
// and viewport; artifacts by the hash of all plans and the format.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, d, pipeline.Options{
//	    ViewportWidth: 390,
//	    Formats:       []string{"json", "svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := result.Artifacts["json"]
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/guestcard/pkg/cache"
	"github.com/matzehuels/guestcard/pkg/errors"
	"github.com/matzehuels/guestcard/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultViewportWidth is a common phone width in device units.
	DefaultViewportWidth = 390.0

	// DefaultWorkers bounds parallel resolution.
	DefaultWorkers = 4

	// MaxWorkers caps user-supplied worker counts.
	MaxWorkers = 64
)

// Format constants for output formats.
const (
	FormatJSON    = "json"
	FormatDOT     = "dot"
	FormatSVG     = "svg"
	FormatPreview = "preview"
)

// Formats lists the supported output formats in display order.
var Formats = []string{FormatJSON, FormatDOT, FormatSVG, FormatPreview}

// Extensions maps formats to output file suffixes.
var Extensions = map[string]string{
	FormatJSON:    ".plan.json",
	FormatDOT:     ".dot",
	FormatSVG:     ".svg",
	FormatPreview: ".preview.svg",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It supports JSON for HTTP requests.
type Options struct {
	ViewportWidth float64  `json:"viewport_width,omitempty"`
	Formats       []string `json:"formats,omitempty"`
	Workers       int      `json:"workers,omitempty"`

	// Refresh bypasses cache reads. Results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	// Rows adds the row selection to the JSON artifact.
	Rows bool `json:"rows,omitempty"`

	// Detailed adds coordinates to DOT and SVG labels.
	Detailed bool `json:"detailed,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// EntryPlan is the resolved plan of one deck entry.
type EntryPlan struct {
	ID     string      `json:"id"`
	Plan   layout.Plan `json:"plan"`
	Cached bool        `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Plans are in deck order.
	Plans []EntryPlan

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Entries     int
	Visible     int // visible elements across all plans
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache use per stage.
type CacheInfo struct {
	Hits      int  // plans served from cache
	Misses    int  // plans resolved
	RenderHit bool // all artifacts served from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if _, ok := Extensions[format]; !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list. An empty string
// yields the default format.
func ParseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{FormatJSON}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks options and fills defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ViewportWidth == 0 {
		o.ViewportWidth = DefaultViewportWidth
	}
	if err := errors.ValidateViewport(o.ViewportWidth); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	switch {
	case o.Workers <= 0:
		o.Workers = DefaultWorkers
	case o.Workers > MaxWorkers:
		return errors.New(errors.ErrCodeInvalidInput, "workers must be at most %d, got %d", MaxWorkers, o.Workers)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// PlanKeyOpts returns cache key options for plans.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{ViewportWidth: o.ViewportWidth}
}

// ArtifactKeyOpts returns cache key options for one artifact format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:        format,
		ViewportWidth: o.ViewportWidth,
		Rows:          o.Rows,
		Detailed:      o.Detailed,
	}
}

func (o Options) String() string {
	return fmt.Sprintf("viewport=%g formats=%s workers=%d", o.ViewportWidth, strings.Join(o.Formats, ","), o.Workers)
}
