package sim

import (
	"context"
	"math"
	"sort"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/search"
)

// BenchReport summarises many simulated searches.
type BenchReport struct {
	Runs     int
	Outcomes map[search.Outcome]int

	// Reseeds holds the reseed count of every successful search, sorted.
	Reseeds []int
}

// Bench runs one search per seed in [opts.Seed, opts.Seed+runs) and
// collects the outcomes. The searcher must not log per run.
func Bench(ctx context.Context, s *search.Searcher, cfg config.Settings, opts Options, runs int) BenchReport {
	report := BenchReport{Runs: runs, Outcomes: make(map[search.Outcome]int)}
	base := opts.Seed
	for i := 0; i < runs; i++ {
		if ctx.Err() != nil {
			report.Runs = i
			break
		}
		opts.Seed = base + int64(i)
		env := New(opts)
		res := s.Run(ctx, cfg, env)
		report.Outcomes[res.Outcome]++
		if res.Outcome.Found() {
			report.Reseeds = append(report.Reseeds, res.Reseeds)
		}
	}
	sort.Ints(report.Reseeds)
	return report
}

// Percentile returns the reseed count at or below which p percent of the
// successful searches finished. It returns 0 when nothing succeeded.
func (r BenchReport) Percentile(p float64) int {
	if len(r.Reseeds) == 0 {
		return 0
	}
	switch {
	case p <= 0:
		return r.Reseeds[0]
	case p >= 100:
		return r.Reseeds[len(r.Reseeds)-1]
	}
	idx := int(math.Ceil(p/100*float64(len(r.Reseeds)))) - 1
	if idx < 0 {
		idx = 0
	}
	return r.Reseeds[idx]
}

// SuccessRate is the share of runs that found a match.
func (r BenchReport) SuccessRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(len(r.Reseeds)) / float64(r.Runs)
}

// SuggestedLimit rounds the 99th percentile up to the next hundred, within
// the allowed reseed limit range.
func (r BenchReport) SuggestedLimit() int {
	p99 := r.Percentile(99)
	limit := (p99/100 + 1) * 100
	if limit > config.MaxReseedLimit {
		limit = config.MaxReseedLimit
	}
	return limit
}
