package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	appVersion   = "dev"
	appBuildTime = "unknown"
)

// SetVersion sets the version information reported by the CLI
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = version
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// No config or client needed
	PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
	PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "srcapi %s (built %s, %s %s/%s)\n",
			appVersion, appBuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return err
	},
}
