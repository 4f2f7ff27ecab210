// trstart searches for a new run whose starting room sits next to the rooms
// you want, rerolling the seed until it finds one or runs out of attempts.
//
// Usage:
//
//	trstart search            - Run one search against the simulator or a script
//	trstart bench             - Run many searches and suggest a reseed limit
//	trstart config show       - Show the saved settings
//	trstart config set <k=v>  - Change saved settings
//	trstart characters        - List base-game characters
//	trstart rooms             - List searchable rooms and curses
//
// Environment variables are read from the process and from a .env file in
// the working directory.
//
// Global flags:
//
//	--db <path>         - Save data database (default: ~/.trstart/save.db)
//	--config <path>     - Settings YAML used when no save slot exists
//	--slot <name>       - Save slot (default: default)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
	flagSlot       string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trstart",
	Short: "Reseed new runs until the start room is next to the rooms you want",
	Long: `trstart rerolls the seed of a new run until a room next to the starting
room is one of the enabled room types, the first floor's curses match the
curse settings, or the reseed limit is reached.

Available commands:
  search      - Run one search
  bench       - Measure how many reseeds searches take
  config      - Show or change saved settings
  characters  - List base-game characters
  rooms       - List searchable rooms and curses

Examples:
  trstart search --seed 42
  trstart search --script ./replay.lua
  trstart config set shop=on reseed-limit=1500
  trstart bench --runs 500`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env file in the working directory can carry TRSTART_* and
		// OTEL_* variables. Variables already set win.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.trstart/save.db", "Path to save data database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to settings YAML (default: search ~/.trstart and ./configs)")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "default", "Save slot name")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(roomsCmd)
}
