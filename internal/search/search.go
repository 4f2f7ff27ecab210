package search

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/core"
	"github.com/vovakirdan/trstart/internal/registry"
	"github.com/vovakirdan/trstart/internal/telemetry"
)

// Searcher runs the reseed loop. It keeps the override table it resolved at
// construction; it is not safe for concurrent use.
type Searcher struct {
	logger    *log.Logger
	tracer    trace.Tracer
	now       func() time.Time
	overrides OverrideTable
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithCompanion enables character overrides for the companion extension.
func WithCompanion(c Companion) Option {
	return func(s *Searcher) {
		s.overrides = NewOverrideTable(c)
	}
}

// WithTracer sets the tracer used for run spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Searcher) {
		s.tracer = t
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Searcher) {
		s.now = now
	}
}

// New creates a Searcher logging to logger. A nil logger discards output.
func New(logger *log.Logger, opts ...Option) *Searcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Searcher{
		logger:    logger,
		tracer:    telemetry.Tracer("search"),
		now:       time.Now,
		overrides: NewOverrideTable(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Overrides returns the resolved character override table.
func (s *Searcher) Overrides() OverrideTable {
	return s.overrides
}

// Run searches for a seed satisfying cfg, reseeding env as needed. It runs
// synchronously to completion; ctx only carries the trace span.
//
// "Nothing enabled" means nothing could ever reject a floor: no room types
// and no curse gate. With curses disabled and no rooms the search still
// runs, looking for a floor without curses.
func (s *Searcher) Run(ctx context.Context, cfg config.Settings, env Environment) Result {
	cfg.Normalize()
	_, span := s.tracer.Start(ctx, "search.run")
	defer span.End()

	res := Result{
		Limit:   cfg.ReseedLimit,
		Started: s.now(),
		Policy:  PolicyFor(cfg),
	}

	res.Character = env.CurrentCharacter()
	if !cfg.EnableModdedCharacters && registry.IsModded(res.Character) {
		return s.finish(span, res, SkippedModdedCharacter)
	}

	rooms := DeriveEnabledRooms(cfg)
	curses := DeriveEnabledCurses(cfg)
	if o, ok := ApplyCharacterOverrides(rooms, res.Character, s.overrides); ok {
		res.Override = o.Rule
		s.logOverride(o)
	}
	res.Rooms, res.Curses = rooms, curses

	if rooms.Len() == 0 && res.Policy == CurseAny {
		return s.finish(span, res, SkippedNothingEnabled)
	}
	if env.IsUnsupportedDifficulty() {
		return s.finish(span, res, SkippedUnsupportedMode)
	}
	if env.IsCustomSeed() {
		return s.finish(span, res, SkippedCustomSeed)
	}

	// With curses disabled any searchable curse disqualifies the floor.
	checked := curses
	if res.Policy == CurseForbid {
		checked = core.AllCurses()
	}

	for res.Iterations < res.Limit {
		res.Iterations++

		active := env.ActiveCurses()
		cursed := checked.AnyActive(active)
		switch res.Policy {
		case CurseForbid:
			if cursed {
				s.reseed(env, &res)
				continue
			}
		case CurseRequire:
			if !cursed {
				s.reseed(env, &res)
				continue
			}
		}
		res.ActiveCurses = active

		if rooms.Len() == 0 {
			return s.finish(span, res, FoundCurseOnly)
		}

		for _, idx := range core.AdjacentRoomIndices {
			room, ok := env.RoomAt(idx)
			if !ok {
				continue
			}
			if rooms.Has(room) {
				res.MatchedSlot = idx
				res.MatchedRoom = room
				return s.finish(span, res, FoundRoom)
			}
		}

		s.reseed(env, &res)
	}

	res.ActiveCurses = 0
	return s.finish(span, res, Exhausted)
}

func (s *Searcher) reseed(env Environment, res *Result) {
	env.Reseed()
	res.Reseeds++
}

func (s *Searcher) logOverride(o CharacterOverride) {
	switch o.Rule {
	case ReplaceTreasureWithDevil, ReplaceTreasureWithAngel:
		target := core.RoomDevil
		if o.Rule == ReplaceTreasureWithAngel {
			target = core.RoomAngel
		}
		s.logger.Info(fmt.Sprintf("playing as %q, searching for %ss instead of %ss",
			o.Name, target, core.RoomTreasure))
	case StripTreasurePlanetariumShop:
		s.logger.Info(fmt.Sprintf("playing as %q, not searching for %ss, %ss or %ss since this character replaces them",
			o.Name, core.RoomTreasure, core.RoomPlanetarium, core.RoomShop))
	}
}

// finish stamps the elapsed time, logs the terminal line and closes out the span.
func (s *Searcher) finish(span trace.Span, res Result, outcome Outcome) Result {
	res.Outcome = outcome
	res.Elapsed = s.now().Sub(res.Started)

	kv := []any{
		"reseeds", fmt.Sprintf("%d/%d", res.Reseeds, res.Limit),
		"elapsed", res.Elapsed,
		"started", res.Started.Format("15:04:05.000"),
	}

	switch outcome {
	case SkippedModdedCharacter:
		s.logger.Info("exiting early, support for modded characters is disabled",
			append(kv, "character", registry.Name(res.Character))...)
	case SkippedNothingEnabled:
		s.logger.Info("exiting early, no room types or curses are enabled", kv...)
	case SkippedUnsupportedMode:
		s.logger.Info("exiting early, greed mode is not supported", kv...)
	case SkippedCustomSeed:
		s.logger.Info("exiting early, custom seeds are not supported", kv...)
	case FoundRoom:
		s.logger.Info("spawned adjacent to an enabled room type",
			append(kv, "room", res.MatchedRoom.String(), "slot", res.MatchedSlot)...)
	case FoundCurseOnly:
		if res.Policy == CurseForbid {
			s.logger.Info("spawned without curses", kv...)
		} else {
			s.logger.Info("spawned with an enabled curse type",
				append(kv, "curses", res.ActiveCurses.String())...)
		}
	case Exhausted:
		s.logger.Warn("failed to find a run with the desired configuration", kv...)
		s.logger.Info("consider enabling more room types for a faster start")
	}

	span.SetAttributes(
		attribute.String("search.outcome", outcome.String()),
		attribute.Int("search.reseeds", res.Reseeds),
		attribute.Int("search.iterations", res.Iterations),
		attribute.Int("search.limit", res.Limit),
		attribute.Int("search.character", int(res.Character)),
		attribute.String("search.curse_policy", res.Policy.String()),
	)
	return res
}
