package cli

import (
	"github.com/spf13/cobra"

	"github.com/neuroviz/neuroplot/pkg/backend"
	"github.com/neuroviz/neuroplot/pkg/backend/redis"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

// watchCommand creates the watch command, which prints figure change events
// published by the redis backend until interrupted.
func (c *CLI) watchCommand() *cobra.Command {
	var flags backendFlags

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print figure change events from the redis backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := c.resolveConfig(&flags)
			if err != nil {
				return err
			}
			if cfg.Backend != backend.KindRedis {
				return errs.New(errs.ErrCodeUnsupported, "watch needs the redis backend, got %s", cfg.Backend)
			}

			store, closeStore, err := openBackend(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			rb := store.(*redis.Backend)
			out := printer{cmd.OutOrStdout()}
			out.info("Watching %s", StyleValue.Render(rb.Channel()))
			for ev := range rb.Subscribe(ctx) {
				out.keyValue(ev.Op, ev.Target+"  "+StyleDim.Render(ev.At.Local().Format("15:04:05.00")))
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
