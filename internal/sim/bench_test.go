package sim

import (
	"context"
	"testing"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/search"
)

func TestBenchDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7
	cfg := config.DefaultSettings()

	r1 := Bench(context.Background(), search.New(nil), cfg, opts, 100)
	r2 := Bench(context.Background(), search.New(nil), cfg, opts, 100)

	if r1.Runs != 100 {
		t.Errorf("Expected 100 runs, got %d", r1.Runs)
	}
	total := 0
	for _, n := range r1.Outcomes {
		total += n
	}
	if total != 100 {
		t.Errorf("Outcome counts sum to %d, want 100", total)
	}
	if len(r1.Reseeds) != len(r2.Reseeds) {
		t.Fatalf("Bench not deterministic: %d vs %d successes", len(r1.Reseeds), len(r2.Reseeds))
	}
	for i := range r1.Reseeds {
		if r1.Reseeds[i] != r2.Reseeds[i] {
			t.Fatalf("Bench not deterministic at %d", i)
		}
	}
	if r1.SuccessRate() < 0.9 {
		t.Errorf("Default settings should almost always succeed, got %.2f", r1.SuccessRate())
	}
}

func TestBenchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Bench(ctx, search.New(nil), config.DefaultSettings(), DefaultOptions(), 50)
	if r.Runs != 0 || len(r.Outcomes) != 0 {
		t.Errorf("Cancelled bench should not run, got %d runs", r.Runs)
	}
}

func TestPercentile(t *testing.T) {
	r := BenchReport{Runs: 10, Reseeds: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}

	tests := []struct {
		p    float64
		want int
	}{
		{0, 1},
		{10, 1},
		{50, 5},
		{85, 9},
		{99, 10},
		{100, 10},
	}
	for _, tt := range tests {
		if got := r.Percentile(tt.p); got != tt.want {
			t.Errorf("Percentile(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}

	if got := (BenchReport{}).Percentile(50); got != 0 {
		t.Errorf("Empty report percentile = %d, want 0", got)
	}
}

func TestSuggestedLimit(t *testing.T) {
	tests := []struct {
		reseeds []int
		want    int
	}{
		{nil, 100},
		{[]int{0, 12, 40}, 100},
		{[]int{150, 230}, 300},
		{[]int{2990}, config.MaxReseedLimit},
	}
	for _, tt := range tests {
		r := BenchReport{Runs: len(tt.reseeds), Reseeds: tt.reseeds}
		if got := r.SuggestedLimit(); got != tt.want {
			t.Errorf("SuggestedLimit(%v) = %d, want %d", tt.reseeds, got, tt.want)
		}
	}
}
