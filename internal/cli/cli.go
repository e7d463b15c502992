// Package cli implements the neuroplot command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/neuroviz/neuroplot/pkg/backend"
	"github.com/neuroviz/neuroplot/pkg/backend/file"
	"github.com/neuroviz/neuroplot/pkg/backend/memory"
	"github.com/neuroviz/neuroplot/pkg/backend/mongo"
	"github.com/neuroviz/neuroplot/pkg/backend/redis"
	"github.com/neuroviz/neuroplot/pkg/buildinfo"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
	"github.com/neuroviz/neuroplot/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "neuroplot"

	// defaultAddr is the listen address of the figure server.
	defaultAddr = ":8080"
)

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
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Neuroplot lays out and renders neurostimulator recording charts",
		Long:         `Neuroplot turns figure documents into declarative chart specifications and hands them to a plotting backend: a directory of pages, Redis, MongoDB or stdout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetFigureHooks(logHooks{c.Logger})
			observability.SetStoreHooks(logHooks{c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/neuroplot/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Backend Factory
// =============================================================================

// openBackend connects the backend selected by cfg. The returned close
// function releases its connections.
func openBackend(ctx context.Context, cfg Config) (backend.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case backend.KindMemory:
		return memory.New(memory.WithAutoMount()), noop, nil
	case backend.KindFile:
		b, err := file.New(cfg.OutputDir)
		if err != nil {
			return nil, nil, err
		}
		return b, noop, nil
	case backend.KindRedis:
		ttl, err := cfg.Redis.ttl()
		if err != nil {
			return nil, nil, err
		}
		b, err := redis.New(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
			TTL:      ttl,
		})
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	case backend.KindMongo:
		b, err := mongo.New(ctx, mongo.Config{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		})
		if err != nil {
			return nil, nil, err
		}
		return b, func() error { return b.Close(context.Background()) }, nil
	}
	return nil, nil, errs.New(errs.ErrCodeInvalidInput, "unknown backend %q", cfg.Backend)
}
