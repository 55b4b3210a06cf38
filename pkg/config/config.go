// Package config loads guestcard settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/guestcard/config.toml (falling back to
// ~/.config/guestcard/config.toml) unless GUESTCARD_CONFIG names another
// path. A missing file is not an error: every field has a default, and
// fields absent from the file keep theirs.
//
//	viewport_width = 390
//	workers = 4
//	formats = ["json"]
//	log_level = "info"
//
//	[cache]
//	backend = "file"     # file | redis | none
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
// Command-line flags override the file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/guestcard/pkg/errors"
	"github.com/matzehuels/guestcard/pkg/pipeline"
)

const appName = "guestcard"

// Environment variables.
const (
	EnvConfig    = "GUESTCARD_CONFIG"
	EnvRedisAddr = "GUESTCARD_REDIS_ADDR"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Duration is a time.Duration written as a string ("24h", "5s").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full configuration.
type Config struct {
	ViewportWidth float64      `toml:"viewport_width"`
	Workers       int          `toml:"workers"`
	Formats       []string     `toml:"formats"`
	LogLevel      string       `toml:"log_level"`
	Cache         CacheConfig  `toml:"cache"`
	Server        ServerConfig `toml:"server"`
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"` // file backend; empty means the XDG cache dir
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
	TTL       Duration `toml:"ttl"`
}

// ServerConfig tunes the HTTP surface.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	ReadTimeout    Duration `toml:"read_timeout"`
	RequestTimeout Duration `toml:"request_timeout"`

	// Scope prefixes every cache key, isolating deployments that share a
	// redis (one per property, for example).
	Scope string `toml:"scope"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ViewportWidth: pipeline.DefaultViewportWidth,
		Workers:       pipeline.DefaultWorkers,
		Formats:       []string{pipeline.FormatJSON},
		LogLevel:      "info",
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			TTL:       Duration{24 * time.Hour},
		},
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    Duration{5 * time.Second},
			RequestTimeout: Duration{30 * time.Second},
		},
	}
}

// Path returns the config file location, honouring GUESTCARD_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults. GUESTCARD_REDIS_ADDR overrides the redis address. The result is
// validated.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
		}
	}

	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		cfg.Cache.RedisAddr = addr
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file named by [Path].
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := errors.ValidateViewport(c.ViewportWidth); err != nil {
		return err
	}
	if c.Workers < 1 || c.Workers > pipeline.MaxWorkers {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be between 1 and %d, got %d", pipeline.MaxWorkers, c.Workers)
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache.backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr is required")
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// Encode writes c as TOML.
func (c Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CacheDir returns the file cache directory: Cache.Dir if set, otherwise
// $XDG_CACHE_HOME/guestcard or ~/.cache/guestcard.
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
