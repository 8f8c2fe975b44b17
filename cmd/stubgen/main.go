package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// formatVersion adds 'v' prefix if version starts with a digit
func formatVersion(ver string) string {
	if len(ver) > 0 && unicode.IsDigit(rune(ver[0])) {
		return "v" + ver
	}
	return ver
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stubgen",
		Short: "Generate call-recording Bluetooth API stubs",
		Long: `stubgen turns a YAML manifest describing a Bluetooth stack API into a Go
Stub type that records every call in the btmock call registry and returns a
fixed default.

- generate: render the stub file, or verify it is up to date with --check
- list: show the operations and identifiers declared by a manifest

Generated stubs are meant to be checked in and refreshed via go:generate.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", formatVersion(version), commit, date),
	}

	// Silence Cobra's "Error:" prefix - main() prints clean errors
	cmd.SilenceErrors = true

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newListCmd())

	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	// Add -v as a short flag for --version
	cmd.Flags().BoolP("version", "v", false, "Show version information")

	return cmd
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", FormatUserError(err))
		os.Exit(1)
	}
}
