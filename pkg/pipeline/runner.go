package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/guestcard/pkg/cache"
	"github.com/matzehuels/guestcard/pkg/card"
	"github.com/matzehuels/guestcard/pkg/deck"
	"github.com/matzehuels/guestcard/pkg/layout"
	"github.com/matzehuels/guestcard/pkg/observability"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no results; multiple goroutines may share one Runner
// with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// PlanTTL and ArtifactTTL default to cache.TTLPlan and cache.TTLArtifact.
	PlanTTL     time.Duration
	ArtifactTTL time.Duration
}

// NewRunner creates a runner. A nil keyer uses DefaultKeyer, a nil cache
// disables caching and a nil logger uses the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:       cache.Instrument(c),
		Keyer:       keyer,
		Logger:      logger,
		PlanTTL:     cache.TTLPlan,
		ArtifactTTL: cache.TTLArtifact,
	}
}

// Execute resolves every entry of d and renders the requested formats.
// A zero opts.ViewportWidth takes the deck's width, then the default.
func (r *Runner) Execute(ctx context.Context, d *deck.Deck, opts Options) (*Result, error) {
	if opts.ViewportWidth == 0 {
		opts.ViewportWidth = d.ViewportWidth
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	resolveStart := time.Now()
	plans, hits, err := r.ResolveDeck(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}
	result.Plans = plans
	result.Stats.Entries = len(plans)
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.CacheInfo.Hits = hits
	result.CacheInfo.Misses = len(plans) - hits
	for _, p := range plans {
		result.Stats.Visible += len(p.Plan.Visible())
	}

	r.Logger.Info("resolved deck",
		"entries", len(plans),
		"cached", hits,
		"viewport", opts.ViewportWidth,
		"duration", result.Stats.ResolveTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.Render(ctx, plans, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ResolveDeck resolves every entry in parallel, bounded by opts.Workers.
// Plans come back in deck order with the number served from cache.
func (r *Runner) ResolveDeck(ctx context.Context, d *deck.Deck, opts Options) ([]EntryPlan, int, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, 0, err
	}

	observability.Pipeline().OnResolveStart(ctx, len(d.Entries))
	start := time.Now()

	plans := make([]EntryPlan, len(d.Entries))
	var hits atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, e := range d.Entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, cached, err := r.Resolve(gctx, e, opts)
			if err != nil {
				return fmt.Errorf("entry %s: %w", e.ID, err)
			}
			if cached {
				hits.Add(1)
			}
			plans[i] = EntryPlan{ID: e.ID, Plan: p, Cached: cached}
			return nil
		})
	}
	err := g.Wait()

	observability.Pipeline().OnResolveComplete(ctx, len(d.Entries), int(hits.Load()), time.Since(start), err)
	if err != nil {
		return nil, 0, err
	}
	return plans, int(hits.Load()), nil
}

// planInput is the part of an entry a plan depends on. The entry ID is
// left out so identical cards share a cache entry.
type planInput struct {
	Record    card.GuestRecord `json:"record"`
	Context   card.Context     `json:"context"`
	Overrides *card.Overrides  `json:"overrides,omitempty"`
}

// Resolve returns the plan of one entry and whether it came from cache.
// Cache failures degrade to resolving; they are logged, not returned.
func (r *Runner) Resolve(ctx context.Context, e deck.Entry, opts Options) (layout.Plan, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Plan{}, false, err
	}

	entryHash, err := cache.HashJSON(planInput{Record: e.Record, Context: e.Context, Overrides: e.Overrides})
	if err != nil {
		return layout.Plan{}, false, err
	}
	key := r.Keyer.PlanKey(entryHash, opts.PlanKeyOpts())

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		switch {
		case err != nil:
			r.Logger.Warn("plan cache read failed", "entry", e.ID, "error", err)
		case hit:
			var p layout.Plan
			if err := json.Unmarshal(data, &p); err == nil {
				return p, true, nil
			}
			r.Logger.Debug("discarding undecodable cached plan", "entry", e.ID)
		}
	}

	p := layout.Resolve(e.Record, e.Context, e.Overrides, opts.ViewportWidth)

	if data, err := json.Marshal(p); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.PlanTTL); err != nil {
			r.Logger.Warn("plan cache write failed", "entry", e.ID, "error", err)
		}
	}
	return p, false, nil
}

// Render produces every requested format, serving each from cache when
// possible. The bool reports whether all formats were cached.
func (r *Runner) Render(ctx context.Context, plans []EntryPlan, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	planHash, err := cache.HashJSON(plans)
	if err != nil {
		return nil, false, fmt.Errorf("hash plans: %w", err)
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
		} else {
			missing = append(missing, format)
		}
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	rendered, err := RenderArtifacts(ctx, plans, missing, opts)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ArtifactTTL); err != nil {
			r.Logger.Warn("artifact cache write failed", "format", format, "error", err)
		}
	}
	return artifacts, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
