package search

import (
	"time"

	"github.com/vovakirdan/trstart/internal/core"
)

// Outcome is the terminal state of one search.
type Outcome int

const (
	FoundRoom Outcome = iota
	FoundCurseOnly
	Exhausted
	SkippedUnsupportedMode
	SkippedCustomSeed
	SkippedModdedCharacter
	SkippedNothingEnabled
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case FoundRoom:
		return "found room"
	case FoundCurseOnly:
		return "found curse only"
	case Exhausted:
		return "exhausted"
	case SkippedUnsupportedMode:
		return "skipped: unsupported mode"
	case SkippedCustomSeed:
		return "skipped: custom seed"
	case SkippedModdedCharacter:
		return "skipped: modded character"
	case SkippedNothingEnabled:
		return "skipped: nothing enabled"
	default:
		return "unknown"
	}
}

// Found reports whether the search accepted a seed.
func (o Outcome) Found() bool {
	return o == FoundRoom || o == FoundCurseOnly
}

// Skipped reports whether a pre-check ended the search before any reseed.
func (o Outcome) Skipped() bool {
	return o >= SkippedUnsupportedMode
}

// Result describes one search.
type Result struct {
	Outcome   Outcome
	Character core.PlayerType

	// Sets in effect after character overrides.
	Rooms    core.RoomSet
	Curses   core.CurseSet
	Policy   CursePolicy
	Override OverrideRule

	Limit      int
	Iterations int // loop iterations evaluated
	Reseeds    int // reseed calls made

	Started time.Time
	Elapsed time.Duration

	// Set on acceptance.
	MatchedSlot  int
	MatchedRoom  core.RoomType
	ActiveCurses core.CurseMask
}
