package cli

import (
	"github.com/spf13/cobra"

	"github.com/neuroviz/neuroplot/pkg/backend"
	"github.com/neuroviz/neuroplot/pkg/backend/redis"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
	"github.com/neuroviz/neuroplot/pkg/server"
)

// serveCommand creates the serve command, which exposes stored figures over
// HTTP until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		flags backendFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stored figures to browsers",
		Long: `Serve stored figures over HTTP.

  GET /figures/<target>        figure JSON
  GET /figures/<target>/view   HTML page rendering the figure
  GET /events                  change events (redis backend only)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := c.resolveConfig(&flags)
			if err != nil {
				return err
			}
			if cfg.Backend == backend.KindMemory {
				return errs.New(errs.ErrCodeInvalidInput, "serve needs a shared backend (file, redis or mongo)")
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			store, closeStore, err := openBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			opts := []server.Option{server.WithLogger(logger)}
			if rb, ok := store.(*redis.Backend); ok {
				opts = append(opts, server.WithEvents(rb))
			}

			out := printer{cmd.OutOrStdout()}
			out.success("Serving %s figures on %s", cfg.Backend, StyleLink.Render("http://"+displayAddr(cfg.Server.Addr)))
			return server.New(store, opts...).ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+defaultAddr+")")
	flags.register(cmd)
	return cmd
}

// displayAddr makes a listen address clickable: ":8080" → "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
