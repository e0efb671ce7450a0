// Package cli provides the command-line interface for namehue.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/namehue/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	globalVerbose bool
	globalConfig  string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "namehue",
		Short: "Deterministic avatar colours for display names",
		Long: `Namehue derives a stable, accessibility-checked background and text
colour pair for any display name, and analyses colour distribution across a
roster of names to warn about visually ambiguous collisions.

The same name always produces the same colour, on every platform and every
run, so generated avatars stay consistent across exports.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&globalConfig, "config", "", "path to a defaults file (default: $XDG_CONFIG_HOME/namehue/config.yaml)")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(batchCmd)
}

// newLogger builds the CLI logger. Verbose mode surfaces debug detail on
// stderr; otherwise only warnings and errors appear.
func newLogger() hclog.Logger {
	level := hclog.Warn
	if globalVerbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "namehue",
		Output: os.Stderr,
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
