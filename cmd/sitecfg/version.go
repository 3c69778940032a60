package sitecfg

import (
	"fmt"
	"runtime/debug"

	semver3 "github.com/blang/semver"
	semver "github.com/blang/semver/v4"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
	"github.com/spf13/cobra"
)

const releaseRepo = "sitecfg/sitecfg"

var versionSelfUpdate bool

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the sitecfg version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if versionSelfUpdate {
				latest, err := selfUpdate()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "sitecfg", latest)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sitecfg", currentVersion())
			return nil
		},
	}
	cmd.Flags().BoolVar(&versionSelfUpdate, "self-update", false, "update sitecfg to the latest release")
	rootCmd.AddCommand(cmd)
}

func currentVersion() string {
	v := version
	// Use build info if tag overridden at build-time
	if info, ok := debug.ReadBuildInfo(); ok && v == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				v = s.Value
			}
		}
	}
	return v
}

func selfUpdate() (string, error) {
	ver, err := semver.ParseTolerant(currentVersion())
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	latest, err := selfupdate.UpdateSelf(semver3.MustParse(ver.String()), releaseRepo)
	if err != nil {
		return "", err
	}
	log.WithField("version", latest.Version.String()).Debug("self-update finished")
	return latest.Version.String(), nil
}
