package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/neuroviz/neuroplot/pkg/backend"
	"github.com/neuroviz/neuroplot/pkg/figure"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for neuroplot.

Besides command names, the scripts complete figure documents (*.toml) for
render and inspect, backend kinds for --backend and languages for --lang.

Bash:
  $ source <(neuroplot completion bash)

Zsh:
  $ neuroplot completion zsh > "${fpath[1]}/_neuroplot"

Fish:
  $ neuroplot completion fish > ~/.config/fish/completions/neuroplot.fish

PowerShell:
  PS> neuroplot completion powershell | Out-String | Invoke-Expression

Start a new shell after installing a script.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeDocuments offers figure documents for the first argument.
func completeDocuments(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeBackends offers the backend kinds accepted by --backend.
func completeBackends(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	kinds := make([]string, 0, len(backend.ValidKinds))
	for k := range backend.ValidKinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds, cobra.ShellCompDirectiveNoFileComp
}

// completeLanguages offers the interface languages figures are localized to.
func completeLanguages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"en\t" + figure.LocaleFor("en"),
		"zh\t" + figure.LocaleFor("zh"),
	}, cobra.ShellCompDirectiveNoFileComp
}
