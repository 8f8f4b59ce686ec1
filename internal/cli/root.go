package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Deterministic exit codes for scripting and CI gating.
const (
	ExitSuccess     = 0
	ExitDifferences = 1
	ExitUsageError  = 2
	ExitRuntime     = 3
)

var rootCmd = &cobra.Command{
	Use:   "foldiff",
	Short: "Line diff with collapsed unchanged regions",
	Long:  "Foldiff compares two file versions, folds unchanged regions around the changes, and emits deterministic exit codes.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(statCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print foldiff version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "foldiff version %s\n", version)
	},
}
