package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/guestcard/internal/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layout resolution over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			runner, err := c.newRunner(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.Options{
				ViewportWidth:  c.Config.ViewportWidth,
				Workers:        c.Config.Workers,
				RequestTimeout: c.Config.Server.RequestTimeout.Duration,
				ReadTimeout:    c.Config.Server.ReadTimeout.Duration,
			})
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config server.addr)")
	return cmd
}
