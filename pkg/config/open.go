package config

import (
	"context"

	"github.com/matzehuels/guestcard/pkg/cache"
)

// OpenCache opens the configured cache backend. An unresolvable cache
// directory disables caching rather than failing.
func (c Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr: c.Cache.RedisAddr,
			DB:   c.Cache.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return rc, nil
	}

	dir, err := c.CacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

// Keyer returns the cache keyer, scoped when Server.Scope is set.
func (c Config) Keyer() cache.Keyer {
	if c.Server.Scope == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, c.Server.Scope+":")
}
