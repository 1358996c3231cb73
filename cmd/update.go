package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

var checkOnly bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update srcapi to the latest release",
	Long:  `Replace the running binary with the latest GitHub release of update.repository.`,
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	current, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", appVersion)
	}

	selfupdate.SetLogger(&logger)

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(cfg.Update.Repository))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found in %s for %s/%s", cfg.Update.Repository, runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(out, "Current version %s is the latest\n", current)
		return nil
	}

	if checkOnly {
		fmt.Fprintf(out, "Version %s is available (current: %s)\n", latest.Version(), current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logger.Info().
		Str("from", current.String()).
		Str("to", latest.Version()).
		Str("asset", latest.AssetName).
		Msg("Updating")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}
