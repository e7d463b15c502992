package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroviz/neuroplot/pkg/backend"
	"github.com/neuroviz/neuroplot/pkg/backend/file"
	"github.com/neuroviz/neuroplot/pkg/figure"
	"github.com/neuroviz/neuroplot/pkg/plotspec"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	target   string // render target (default: document file name)
	language string // overrides the document and config language
	backendFlags
}

// renderCommand creates the render command, which applies a figure document
// and renders it into the configured backend.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <figure.toml>",
		Short: "Render a figure document",
		Long: `Render a figure document into the configured backend.

The memory backend prints the resulting {data, layout, config} JSON to
stdout; the file backend writes <target>.json and <target>.html.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "render target name (default: document file name)")
	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "interface language (zh or en)")
	_ = cmd.RegisterFlagCompletionFunc("lang", completeLanguages)
	opts.backendFlags.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := printer{cmd.OutOrStdout()}

	cfg, err := c.resolveConfig(&opts.backendFlags)
	if err != nil {
		return err
	}
	doc, err := plotspec.DecodeFile(path)
	if err != nil {
		return err
	}

	target := opts.target
	if target == "" {
		target = targetFromPath(path)
	}
	language := firstNonEmpty(opts.language, doc.Language, cfg.Language)

	prog := newProgress(logger)
	store, closeStore, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("close backend", "err", err)
		}
	}()

	fig := figure.New(target, store, figure.WithLanguage(language), figure.WithLogger(logger))
	if err := doc.Apply(fig); err != nil {
		return err
	}
	if err := fig.Render(ctx); err != nil {
		return err
	}
	prog.done("Rendered " + target)

	switch b := store.(type) {
	case *file.Backend:
		out.success("Rendered %s", StyleValue.Render(target))
		out.file(b.SpecPath(target))
		out.file(b.PagePath(target))
	default:
		if cfg.Backend == backend.KindMemory {
			data, err := store.Load(ctx, target)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		out.success("Rendered %s into %s", StyleValue.Render(target), cfg.Backend)
	}
	out.stats(
		count{len(fig.Handles()), "subplots"},
		count{len(fig.Traces()), "traces"},
		count{len(fig.ColorAxes()), "color axes"},
	)
	return nil
}

// targetFromPath derives a render target from a document path:
// "figs/lfp.toml" → "lfp".
func targetFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
