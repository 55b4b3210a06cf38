package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/pkg/cache"
	"github.com/matzehuels/guestcard/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the plan and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached plan and artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.Config.OpenCache(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			var (
				count int
				where string
			)
			switch s := store.(type) {
			case *cache.FileCache:
				count, err = s.Clear()
				where = "Directory: " + s.Dir()
			case *cache.RedisCache:
				count, err = s.Clear(cmd.Context())
				where = "Redis: " + c.Config.Cache.RedisAddr
			default:
				printInfo("Caching is disabled")
				return nil
			}
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cleared %d cached entries", count)
			printDetail("%s", where)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch c.Config.Cache.Backend {
			case config.BackendRedis:
				fmt.Printf("redis://%s/%d\n", c.Config.Cache.RedisAddr, c.Config.Cache.RedisDB)
			case config.BackendNone:
				printInfo("Caching is disabled")
			default:
				dir, err := c.Config.CacheDir()
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				fmt.Println(dir)
			}
			return nil
		},
	}
}
