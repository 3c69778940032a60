package sitecfg

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/sitecfg/sitecfg/internal/cache"
	"github.com/sitecfg/sitecfg/internal/config"
	"github.com/sitecfg/sitecfg/internal/report"
)

var (
	emitFormat string
	emitOutput string
	emitWrite  bool
	emitForce  bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Write the resolved settings for the generator",
		Long: "emit resolves the selected environment, validates it and writes the mapping. " +
			"Without --output or --write the result goes to stdout.",
		Example: `
# settings module for a publish build
sitecfg emit --env publish --write

# YAML to a chosen path
sitecfg emit -o build/settings.yml`,
		RunE: runEmit,
	}
	cmd.Flags().StringVarP(&emitFormat, "format", "f", "python", "output format: python | yaml | json")
	cmd.Flags().StringVarP(&emitOutput, "output", "o", "", "output file (format inferred from the extension unless --format is set)")
	cmd.Flags().BoolVarP(&emitWrite, "write", "w", false, "write to the default file name for the environment (developconf.py, publishconf.py, ...)")
	cmd.Flags().BoolVar(&emitForce, "force", false, "rewrite the output even if it is unchanged")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats(false))
	rootCmd.AddCommand(cmd)
}

// defaultOutput names the file --write produces.
func defaultOutput(env config.Environment, f report.Format) string {
	prefix := "develop"
	if env == config.Publish {
		prefix = "publish"
	}
	return prefix + "conf" + f.Ext()
}

func runEmit(cmd *cobra.Command, _ []string) error {
	env, s, sources, err := resolveSelected()
	if err != nil {
		return err
	}
	if err := config.Validate(s); err != nil {
		return err
	}

	format, err := report.ParseFormat(emitFormat)
	if err != nil {
		return err
	}
	if emitOutput != "" && !cmd.Flags().Changed("format") {
		if f, err := report.ParseFormat(filepath.Ext(emitOutput)); err == nil {
			format = f
		}
	}
	if format == report.FormatTable {
		return oops.In("cli").Code("bad_format").Errorf("emit does not write tables; use show")
	}

	b, err := report.Bytes(s, format, report.Header{Env: env, Sources: sources})
	if err != nil {
		return err
	}

	out := emitOutput
	if out == "" && emitWrite {
		out = filepath.Join(flagRoot, defaultOutput(env, format))
	}
	if out == "" || out == "-" {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}

	key, err := filepath.Abs(out)
	if err != nil {
		return oops.In("cli").With("path", out).Wrapf(err, "resolve output path")
	}
	db, _ := cache.Load(flagRoot)
	if !emitForce && db.Unchanged(key, b) {
		fmt.Fprintln(cmd.OutOrStdout(), "Unchanged", out)
		return nil
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, b, 0o644); err != nil {
		return err
	}
	db.Record(key, b)
	if err := cache.Save(flagRoot, db); err != nil {
		log.WithError(err).Warn("could not save emit cache")
	}
	log.WithField("path", out).Debug("wrote settings")
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", out)
	return nil
}
