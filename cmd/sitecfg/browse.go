package sitecfg

import (
	"github.com/spf13/cobra"

	"github.com/sitecfg/sitecfg/internal/tui"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "browse",
		Short: "Browse both environments interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			dev, pub, _, err := resolveBoth()
			if err != nil {
				return err
			}
			return tui.Run(dev, pub)
		},
	})
}
