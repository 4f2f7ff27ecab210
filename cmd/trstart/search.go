package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trstart/internal/core"
	"github.com/vovakirdan/trstart/internal/luaenv"
	"github.com/vovakirdan/trstart/internal/registry"
	"github.com/vovakirdan/trstart/internal/search"
	"github.com/vovakirdan/trstart/internal/sim"
	"github.com/vovakirdan/trstart/internal/telemetry"
)

var (
	flagSeed          int64
	flagCharacter     int
	flagGreed         bool
	flagCustomSeed    bool
	flagCompanion     bool
	flagScript        string
	flagCurseChance   float64
	flagMissingChance float64
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one run-start search",
	Long: `Run the run-start search once using the saved settings.

By default the search runs against the built-in floor simulator. With
--script it runs against a Lua script that defines a Game table instead.

Examples:
  trstart search
  trstart search --seed 42 --character 3
  trstart search --companion --character 45   # simulate Sin
  trstart search --script ./replay.lua`,
	Run: runSearch,
}

func init() {
	defaults := sim.DefaultOptions()
	addSimFlags(searchCmd)
	searchCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Simulator seed (0 = random based on time)")
	searchCmd.Flags().IntVar(&flagCharacter, "character", int(registry.Isaac), "Player type to simulate")
	searchCmd.Flags().BoolVar(&flagGreed, "greed", false, "Simulate greed mode")
	searchCmd.Flags().BoolVar(&flagCustomSeed, "custom-seed", false, "Simulate a manually entered seed")
	searchCmd.Flags().StringVar(&flagScript, "script", "", "Lua script providing the game state")
	searchCmd.Flags().Float64Var(&flagMissingChance, "missing-chance", defaults.MissingRoomChance, "Chance a slot has no room data")
}

// addSimFlags registers the simulator flags shared by search and bench.
func addSimFlags(cmd *cobra.Command) {
	defaults := sim.DefaultOptions()
	cmd.Flags().BoolVar(&flagCompanion, "companion", false, "Simulate the character extension being installed")
	cmd.Flags().Float64Var(&flagCurseChance, "curse-chance", defaults.CurseChance, "Chance the first floor is cursed")
}

// environment is what the search command runs against.
type environment interface {
	search.Environment
	search.Companion
	HasCompanion() bool
}

func runSearch(cmd *cobra.Command, _ []string) {
	logger := mustLogger()

	cfg := loadSettings(logger)

	source := "simulator"
	if flagScript != "" {
		source = "script"
	}
	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, telemetry.RunAttributes(flagSlot, source)...)
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		shutdown = func(context.Context) error { return nil }
	}

	var (
		env       environment
		simulated *sim.Environment
	)
	if flagScript != "" {
		env, err = luaenv.LoadFile(flagScript, logger.WithPrefix(logHeader+" script"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
			os.Exit(1)
		}
	} else {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		simulated = sim.New(sim.Options{
			Seed:              seed,
			Character:         core.PlayerType(flagCharacter),
			Greed:             flagGreed,
			CustomSeed:        flagCustomSeed,
			Companion:         flagCompanion,
			CurseChance:       flagCurseChance,
			MissingRoomChance: flagMissingChance,
		})
		env = simulated
		logger.Debug("simulator ready", "seed", seed, "run", simulated.SeedString())
	}

	res := newSearcher(logger, env).Run(ctx, cfg, env)
	printResult(res, simulated)

	if err := shutdown(ctx); err != nil {
		logger.Warn("could not flush traces", "error", err)
	}
	if res.Outcome == search.Exhausted {
		os.Exit(2)
	}
}

// newSearcher wires the companion lookup when the environment provides one.
func newSearcher(logger *log.Logger, env environment) *search.Searcher {
	var opts []search.Option
	if env.HasCompanion() {
		opts = append(opts, search.WithCompanion(env))
	}
	return search.New(logger, opts...)
}

func printResult(res search.Result, simulated *sim.Environment) {
	fmt.Printf("Outcome:    %s\n", res.Outcome)
	fmt.Printf("Character:  %s\n", registry.Name(res.Character))
	if res.Outcome.Skipped() {
		return
	}

	fmt.Printf("Rooms:      %s\n", res.Rooms)
	fmt.Printf("Curses:     %s (%s)\n", res.Curses, res.Policy)
	if res.Override != search.OverrideNone {
		fmt.Printf("Override:   %s\n", res.Override)
	}
	fmt.Printf("Reseeds:    %d/%d\n", res.Reseeds, res.Limit)
	fmt.Printf("Elapsed:    %s\n", res.Elapsed.Round(time.Microsecond))

	switch res.Outcome {
	case search.FoundRoom:
		fmt.Printf("Found:      %s at slot %d\n", res.MatchedRoom, res.MatchedSlot)
		fmt.Printf("Floor:      %s\n", res.ActiveCurses)
	case search.FoundCurseOnly:
		fmt.Printf("Floor:      %s\n", res.ActiveCurses)
	}
	if simulated != nil {
		fmt.Printf("Seed:       %s\n", simulated.SeedString())
	}
}
