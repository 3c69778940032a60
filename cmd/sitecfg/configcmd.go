package sitecfg

import (
	"fmt"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sitecfg/sitecfg/internal/config"
)

var (
	cfgOutput string
	cfgForce  bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a sitecfg.yml layer file with the common keys",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&cfgOutput, "output", "sitecfg.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the layer files that would be applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, sources, err := loadLayers()
			if err != nil {
				return err
			}
			for _, s := range sources {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			if p := config.GlobalPath(); p != "" && flagNoGlobal {
				fmt.Fprintln(cmd.OutOrStdout(), "global (ignored):", p)
			}
			return nil
		},
	})
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return oops.In("cli").Code("exists").With("path", cfgOutput).Errorf("%s already exists (use --force)", cfgOutput)
	}
	fc := config.Template()
	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}
