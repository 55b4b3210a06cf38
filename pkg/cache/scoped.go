package cache

// ScopedKeyer prefixes every key of an inner Keyer. The HTTP surface uses
// it to keep one namespace per property when several share a redis.
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "property:lisbon-01:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner. A nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PlanKey implements Keyer.
func (k *ScopedKeyer) PlanKey(entryHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(entryHash, opts)
}

// ArtifactKey implements Keyer.
func (k *ScopedKeyer) ArtifactKey(deckHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(deckHash, opts)
}
