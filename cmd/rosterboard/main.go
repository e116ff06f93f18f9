// Package main is the entry point for the rosterboard CLI.
//
// RosterBoard can be run either as a library (SDK) or as a standalone binary
// with YAML configuration. This CLI provides the standalone binary approach.
//
// Usage:
//
//	rosterboard serve -c config.yaml                # Start the roster page
//	rosterboard validate -c config.yaml             # Validate configuration
//	rosterboard list -c config.yaml --sort score    # Print the seed roster
//	rosterboard export -c config.yaml -o out.xlsx   # Write the seed roster as a spreadsheet
//	rosterboard version                             # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by GoReleaser at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "rosterboard",
	Short: "A browser-based student roster editor",
	Long: `RosterBoard serves a small student roster editor in the browser.

Every browser session gets its own roster, seeded from the configuration.
Students are added through a form or edited in an inline grid, and each row
shows a star rating for its score.

Quick start:
  1. Create a config file (rosterboard.yaml)
  2. Run: rosterboard serve -c rosterboard.yaml
  3. Open http://localhost:8080 in your browser

Example config:
  port: 8080
  variant: editable
  students:
    - name: 김철수
      age: 14
      score: 3
      grade: 1
      class: 3`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this rosterboard binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rosterboard %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
