package sitecfg

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitecfg/sitecfg/internal/config"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the resolved settings of both environments",
		Long:  "check exits 0 when development and publish both resolve to valid settings, 1 otherwise.",
		RunE:  runCheck,
	})
}

func runCheck(cmd *cobra.Command, _ []string) error {
	dev, pub, sources, err := resolveBoth()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, src := range sources {
		fmt.Fprintln(w, "layer:", src)
	}
	failed := false
	for _, env := range config.Environments() {
		s := dev
		if env == config.Publish {
			s = pub
		}
		if err := config.Validate(s); err != nil {
			failed = true
			fmt.Fprintf(w, "%s: %s\n", env, err.Error())
			continue
		}
		fmt.Fprintf(w, "%s: ok (%d keys)\n", env, len(s))
	}
	if failed {
		return errCheckFailed
	}
	return nil
}
