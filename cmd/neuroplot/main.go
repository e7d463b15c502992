package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neuroviz/neuroplot/internal/cli"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

// Exit codes beyond the usual 0/1.
const (
	exitInvalid     = 2   // bad figure document, grid, axis or target
	exitUnavailable = 69  // backend unreachable (EX_UNAVAILABLE)
	exitInterrupted = 130 // SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process status scripts can branch on.
func exitCode(err error) int {
	code := errs.GetCode(err)
	switch {
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case strings.HasPrefix(string(code), "INVALID_"):
		return exitInvalid
	case code == errs.ErrCodeBackend:
		return exitUnavailable
	}
	return 1
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// The level is only known once flags are parsed.
	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
