package sitecfg

import (
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/sitecfg/sitecfg/internal/config"
	"github.com/sitecfg/sitecfg/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:       "completion bash|zsh|fish|powershell",
		Short:     "Generate shell completion scripts",
		Long:      "completion prints a script that completes subcommands, environment names and output formats.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletionV2(w, true)
			case "zsh":
				return rootCmd.GenZshCompletion(w)
			case "fish":
				return rootCmd.GenFishCompletion(w, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(w)
			}
			return oops.In("cli").Code("bad_shell").With("shell", args[0]).Errorf("unsupported shell: %s", args[0])
		},
		Example: `
# load into the current bash session, then "sitecfg emit --env <TAB>"
# offers development and publish
source <(sitecfg completion bash)

# install for zsh
sitecfg completion zsh > "${fpath[1]}/_sitecfg"`,
	}
	rootCmd.AddCommand(cmd)
}

func completeEnv(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
	var out []cobra.Completion
	for _, e := range config.Environments() {
		out = append(out, e.String())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats lists the formats a command accepts.
func completeFormats(withTable bool) cobra.CompletionFunc {
	return func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
		out := []cobra.Completion{string(report.FormatPython), string(report.FormatYAML), string(report.FormatJSON)}
		if withTable {
			out = append(out, string(report.FormatTable))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
