package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neuroviz/neuroplot/pkg/backend/memory"
	"github.com/neuroviz/neuroplot/pkg/figure"
	"github.com/neuroviz/neuroplot/pkg/plotspec"
)

// inspectCommand creates the inspect command, which applies a document to
// an in-memory figure and prints its grid and traces.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:               "inspect <figure.toml>",
		Short:             "Show the subplot grid and traces of a figure document",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeDocuments,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := plotspec.DecodeFile(args[0])
			if err != nil {
				return err
			}
			fig := figure.New(targetFromPath(args[0]), memory.New(memory.WithAutoMount()),
				figure.WithLanguage(doc.Language),
				figure.WithLogger(loggerFromContext(cmd.Context())))
			if err := doc.Apply(fig); err != nil {
				return err
			}

			if asJSON {
				data, err := fig.Spec().Encode()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			printFigure(printer{cmd.OutOrStdout()}, fig)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the engine JSON instead of a summary")
	return cmd
}

func printFigure(out printer, fig *figure.Figure) {
	out.title(fig.Target())
	out.keyValue("locale", fig.Locale())

	fmt.Fprintln(out.w)
	out.title("Subplots")
	for _, h := range fig.Handles() {
		line := fmt.Sprintf("(%d,%d)  %s/%s", h.Row(), h.Col(), h.XAxis(), h.YAxis())
		if xd, ok := h.XDomain(); ok {
			yd, _ := h.YDomain()
			line += fmt.Sprintf("  x=[%.3f, %.3f] y=[%.3f, %.3f]", xd[0], xd[1], yd[0], yd[1])
		}
		out.info("%s", line)
	}

	if traces := fig.Traces(); len(traces) > 0 {
		fmt.Fprintln(out.w)
		out.title("Traces")
		for i, tr := range traces {
			out.info("%-3d %-8s %s/%s", i, tr.Kind(), tr.XAxis(), tr.YAxis())
		}
	}

	if axes := fig.ColorAxes(); len(axes) > 0 {
		fmt.Fprintln(out.w)
		out.title("Color axes")
		out.detail("%s", strings.Join(axes, ", "))
	}
}
