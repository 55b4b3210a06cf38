package cache

import (
	"context"
	"time"

	"github.com/matzehuels/guestcard/pkg/observability"
)

// Instrumented reports every Get and Set of the wrapped cache to the
// registered observability cache hooks.
type Instrumented struct {
	Cache
}

// Instrument wraps c. Wrapping an Instrumented cache returns it unchanged.
func Instrument(c Cache) Cache {
	if ic, ok := c.(*Instrumented); ok {
		return ic
	}
	return &Instrumented{Cache: c}
}

// Get implements Cache.
func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.Cache.Get(ctx, key)
	if err != nil {
		return data, ok, err
	}
	if ok {
		observability.Cache().OnCacheHit(ctx, KeyType(key))
	} else {
		observability.Cache().OnCacheMiss(ctx, KeyType(key))
	}
	return data, ok, nil
}

// Set implements Cache.
func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	return nil
}
