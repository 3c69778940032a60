package sitecfg

import (
	"github.com/spf13/cobra"

	"github.com/sitecfg/sitecfg/internal/report"
)

var diffAll bool

func init() {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show what publish changes relative to development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dev, pub, _, err := resolveBoth()
			if err != nil {
				return err
			}
			report.PrintDiff(cmd.OutOrStdout(), report.Diff(dev, pub), report.DiffOptions{
				NoColor:       !useColor(cmd.OutOrStdout()),
				ShowUnchanged: diffAll,
			})
			return nil
		},
	}
	cmd.Flags().BoolVarP(&diffAll, "all", "a", false, "also list keys publish inherits unchanged")
	rootCmd.AddCommand(cmd)
}
