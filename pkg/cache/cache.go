// Package cache stores resolved plans and rendered artifacts between runs.
//
// Resolution is cheap, but decks are resolved repeatedly by the CLI and
// the HTTP surface with the same inputs. A [Cache] keyed by a hash of the
// entry and the viewport lets both skip the work. Three backends exist:
//
//   - [FileCache]: hash-sharded JSON files, used by the CLI
//   - [RedisCache]: shared cache for the HTTP surface
//   - [NullCache]: disables caching
//
// Keys are produced by a [Keyer] so that deployments can isolate
// namespaces (one per property, for example) with [ScopedKeyer].
package cache

import (
	"context"
	"strings"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
// Get reports a miss with ok=false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes. Plans depend only on their inputs, so they live long;
// artifacts are larger and cheap to rebuild from cached plans.
const (
	TTLPlan     = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Key types reported to cache hooks.
const (
	KeyTypePlan     = "plan"
	KeyTypeArtifact = "artifact"
)

// PlanKeyOpts are the inputs besides the entry that change a plan.
type PlanKeyOpts struct {
	ViewportWidth float64 `json:"viewport_width"`
}

// ArtifactKeyOpts are the inputs besides the plans that change an artifact.
type ArtifactKeyOpts struct {
	Format        string  `json:"format"`
	ViewportWidth float64 `json:"viewport_width"`
	Rows          bool    `json:"rows,omitempty"`
	Detailed      bool    `json:"detailed,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// PlanKey keys a resolved plan by the hash of its entry.
	PlanKey(entryHash string, opts PlanKeyOpts) string
	// ArtifactKey keys a rendered artifact by the hash of its deck.
	ArtifactKey(deckHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PlanKey implements Keyer.
func (DefaultKeyer) PlanKey(entryHash string, opts PlanKeyOpts) string {
	return hashKey(KeyTypePlan, entryHash, opts)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(deckHash string, opts ArtifactKeyOpts) string {
	return hashKey(KeyTypeArtifact, deckHash, opts)
}

// KeyType returns the key type encoded in a key built by a Keyer, or ""
// for foreign keys.
func KeyType(key string) string {
	for _, kt := range []string{KeyTypePlan, KeyTypeArtifact} {
		if strings.Contains(key, kt+":") {
			return kt
		}
	}
	return ""
}
