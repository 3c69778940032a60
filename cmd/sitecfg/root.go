package sitecfg

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/sitecfg/sitecfg/internal/logger"
)

var (
	flagEnv      string
	flagRoot     string
	flagConfig   string
	flagNoColor  bool
	flagVerbose  bool
	flagNoGlobal bool

	version = "0.1.0"

	settings = viper.New()
	log      = logger.Get()
)

// errCheckFailed makes Execute exit 1 instead of 2: the command ran, the
// configuration did not pass.
var errCheckFailed = errors.New("configuration check failed")

// rootCmd is the base Cobra command for the sitecfg CLI.
var rootCmd = &cobra.Command{
	Use:   "sitecfg",
	Short: "Resolve layered static-site configuration",
	Long: "sitecfg builds the settings for a static site generator from built-in development " +
		"defaults, publish overrides and optional YAML layer files, and writes the resolved mapping " +
		"in the format the generator reads.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the sitecfg CLI. It should be called by the main package.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errCheckFailed):
		return 1
	default:
		fmt.Fprintln(stderr, "error:", err.Error())
		return 2
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagEnv, "env", "e", "development", "environment to resolve: development | publish")
	pf.StringVar(&flagRoot, "root", ".", "site directory searched for sitecfg.yml")
	pf.StringVarP(&flagConfig, "config", "c", "", "explicit layer file (skips the search in --root)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log resolution steps to stderr")
	pf.BoolVar(&flagNoGlobal, "no-global", false, "ignore the per-user layer file")
	_ = rootCmd.RegisterFlagCompletionFunc("env", completeEnv)

	// SITECFG_ENV, SITECFG_ROOT, SITECFG_NO_COLOR, ... fill in for unset flags
	settings.SetEnvPrefix("SITECFG")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	_ = settings.BindPFlags(pf)
}

func setup(cmd *cobra.Command, _ []string) error {
	flagEnv = settings.GetString("env")
	flagRoot = settings.GetString("root")
	flagConfig = settings.GetString("config")
	flagNoColor = settings.GetBool("no-color")
	flagVerbose = settings.GetBool("verbose")
	flagNoGlobal = settings.GetBool("no-global")
	if flagVerbose {
		logger.Enable(cmd.ErrOrStderr(), "debug")
	}
	log.WithFields(logger.Fields{
		"command": cmd.Name(),
		"env":     flagEnv,
		"root":    flagRoot,
	}).Debug("starting")
	return nil
}

// useColor reports whether w is a terminal and color was not disabled.
func useColor(w io.Writer) bool {
	if flagNoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
