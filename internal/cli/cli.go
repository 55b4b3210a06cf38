// Package cli implements the guestcard command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/pkg/buildinfo"
	"github.com/matzehuels/guestcard/pkg/config"
	"github.com/matzehuels/guestcard/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "guestcard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is loaded before any command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Guestcard resolves room card layouts",
		Long:         `Guestcard computes where every element of a hotel room guest card goes: which rows are shown, their scaled positions and their stacking order, for any viewport width.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/guestcard/config.toml)")

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.matrixCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.tryCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) loadConfig() error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	c.Config = cfg
	if lvl, err := cfg.Level(); err == nil {
		c.SetLogLevel(lvl)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg := c.Config
	if noCache {
		cfg.Cache.Backend = config.BackendNone
	}
	store, err := cfg.OpenCache(ctx)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(store, cfg.Keyer(), c.Logger)
	if ttl := cfg.Cache.TTL.Duration; ttl > 0 {
		runner.PlanTTL = ttl
		runner.ArtifactTTL = ttl
	}
	return runner, nil
}

// pipelineOptions returns run options seeded from the configuration.
// A zero viewport leaves the choice to the deck.
func (c *CLI) pipelineOptions(viewport float64) pipeline.Options {
	return pipeline.Options{
		ViewportWidth: viewport,
		Formats:       c.Config.Formats,
		Workers:       c.Config.Workers,
		Logger:        c.Logger,
	}
}
