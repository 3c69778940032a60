package sitecfg

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sitecfg/sitecfg/internal/report"
)

var (
	showFormat string
	showKeys   string
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings",
		Example: `
sitecfg show --env publish
sitecfg show --keys 'feed_*,*_url' --format yaml`,
		RunE: runShow,
	}
	cmd.Flags().StringVarP(&showFormat, "format", "f", "table", "output format: table | yaml | json | python")
	cmd.Flags().StringVarP(&showKeys, "keys", "k", "", "comma-separated key globs to include")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats(true))
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	env, s, sources, err := resolveSelected()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(showFormat)
	if err != nil {
		return err
	}
	s, err = report.MatchKeys(s, splitList(showKeys))
	if err != nil {
		return err
	}
	b, err := report.Bytes(s, format, report.Header{Env: env, Sources: sources})
	if err != nil {
		return err
	}
	out := string(b)
	if useColor(cmd.OutOrStdout()) {
		out = report.Highlight(out, format)
	}
	_, err = cmd.OutOrStdout().Write([]byte(out))
	return err
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
