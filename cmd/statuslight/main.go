// Package main is the entry point for the statuslight CLI.
//
// StatusLight can be run either as a library (SDK) or as a standalone
// binary, optionally with YAML configuration. This CLI provides the
// standalone binary approach.
//
// Usage:
//
//	statuslight serve                  # Start with defaults (port 3000)
//	statuslight serve -c config.yaml   # Start with a config file
//	statuslight serve --no-sound       # Start with audio cues disabled
//	statuslight validate -c config.yaml
//	statuslight version
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
// It just displays help - actual functionality is in subcommands.
var rootCmd = &cobra.Command{
	Use:   "statuslight",
	Short: "A local status-broadcast server",
	Long: `StatusLight is a local status-broadcast server.

An automation process (a build, an agent pipeline) calls plain HTTP
endpoints to set a status; statuslight pushes every change in real time
to all connected observers over Server-Sent Events and shows it on a
bundled LED dashboard.

Quick start:
  1. Run: statuslight serve
  2. Open http://localhost:3000 in your browser
  3. Drive it: curl http://localhost:3000/yellow

Routes:
  /red /idle            set idle       (red LED)
  /yellow /processing   set processing (yellow LED)
  /waiting /prompt      set waiting    (blinking yellow LED, audio cue)
  /green /complete      set complete   (green LED, audio cue)
  /status               read current status as JSON
  /events               Server-Sent Events stream`,
	// No Run/RunE means this just shows help when called without subcommands
}

// Execute runs the root command.
// This is the main entry point called from main().
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
	Long:  `Print the version, commit hash, and build date of this statuslight binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statuslight %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	// Register subcommands with root
	rootCmd.AddCommand(versionCmd)
}
