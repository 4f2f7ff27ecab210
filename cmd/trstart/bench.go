package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trstart/internal/core"
	"github.com/vovakirdan/trstart/internal/registry"
	"github.com/vovakirdan/trstart/internal/search"
	"github.com/vovakirdan/trstart/internal/sim"
	"github.com/vovakirdan/trstart/internal/telemetry"
)

var (
	flagRuns      int
	flagBenchSeed int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure how many reseeds searches take",
	Long: `Run many searches against the simulator with the saved settings and
print how many reseeds they needed. Use the suggested limit to tune
reseed-limit.

Examples:
  trstart bench
  trstart bench --runs 2000 --seed 1
  trstart bench --character 45 --companion`,
	Run: runBench,
}

func init() {
	addSimFlags(benchCmd)
	benchCmd.Flags().IntVar(&flagRuns, "runs", 500, "Number of searches to run")
	benchCmd.Flags().Int64Var(&flagBenchSeed, "seed", 1, "First simulator seed")
	benchCmd.Flags().IntVar(&flagCharacter, "character", int(registry.Isaac), "Player type to simulate")
}

func runBench(cmd *cobra.Command, _ []string) {
	logger := mustLogger()
	if flagRuns <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --runs must be positive")
		os.Exit(1)
	}

	cfg := loadSettings(logger)

	opts := sim.DefaultOptions()
	opts.Seed = flagBenchSeed
	opts.Character = core.PlayerType(flagCharacter)
	opts.Companion = flagCompanion
	opts.CurseChance = flagCurseChance

	// Per-run spans and log lines would drown the summary.
	searchOpts := []search.Option{search.WithTracer(telemetry.NoopTracer())}
	if flagCompanion {
		searchOpts = append(searchOpts, search.WithCompanion(sim.New(opts)))
	}
	searcher := search.New(nil, searchOpts...)

	logger.Info("benchmarking", "runs", flagRuns, "seed", flagBenchSeed, "limit", cfg.ReseedLimit)
	start := time.Now()
	report := sim.Bench(cmd.Context(), searcher, cfg, opts, flagRuns)
	elapsed := time.Since(start)

	printBench(report, cfg.ReseedLimit, elapsed)
}

func printBench(r sim.BenchReport, limit int, elapsed time.Duration) {
	fmt.Printf("Runs:      %d in %s\n", r.Runs, elapsed.Round(time.Millisecond))
	fmt.Println()

	fmt.Printf("  %-24s  %s\n", "Outcome", "Count")
	fmt.Printf("  %-24s  %s\n", "-------", "-----")
	for o := search.FoundRoom; o <= search.SkippedNothingEnabled; o++ {
		if n := r.Outcomes[o]; n > 0 {
			fmt.Printf("  %-24s  %d\n", o, n)
		}
	}
	fmt.Println()

	if len(r.Reseeds) == 0 {
		fmt.Println("No search succeeded.")
		return
	}

	fmt.Printf("Success:   %.1f%%\n", r.SuccessRate()*100)
	fmt.Printf("Reseeds:   p50=%d p90=%d p99=%d max=%d\n",
		r.Percentile(50), r.Percentile(90), r.Percentile(99), r.Percentile(100))
	fmt.Printf("Limit:     %d (suggested %d)\n", limit, r.SuggestedLimit())
}
