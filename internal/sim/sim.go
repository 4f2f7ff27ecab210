// Package sim provides a deterministic stand-in for the game: a seeded
// generator for the first floor's adjacent rooms and curses that answers the
// same queries the search makes of the real game.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/trstart/internal/core"
)

// Options configures a simulated run.
type Options struct {
	// Seed drives the sequence of run seeds produced by reseeding.
	Seed int64

	Character  core.PlayerType
	Greed      bool
	CustomSeed bool

	// Companion simulates the character extension being installed.
	Companion bool

	// CurseChance is the chance the first floor rolls a curse.
	CurseChance float64

	// MissingRoomChance is the chance a slot has no room data.
	MissingRoomChance float64
}

// DefaultOptions returns options matching observed first-floor odds.
func DefaultOptions() Options {
	return Options{
		CurseChance:       0.15,
		MissingRoomChance: 0.02,
	}
}

// Environment is a simulated game. It is deterministic for a given Options.
type Environment struct {
	opts Options
	rng  *rand.Rand

	runSeed uint32
	rooms   [len(core.AdjacentRoomIndices)]core.RoomType
	present [len(core.AdjacentRoomIndices)]bool
	curses  core.CurseMask
	reseeds int
}

// New creates a simulated environment and generates its first floor.
func New(opts Options) *Environment {
	e := &Environment{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
	e.roll()
	return e
}

// roll picks a new run seed and regenerates the floor from it.
func (e *Environment) roll() {
	e.runSeed = e.rng.Uint32()
	e.generate()
}

// generate derives the floor entirely from the run seed.
func (e *Environment) generate() {
	floorRNG := rand.New(rand.NewSource(int64(e.runSeed)))

	for i := range e.rooms {
		if floorRNG.Float64() < e.opts.MissingRoomChance {
			e.rooms[i], e.present[i] = core.RoomNull, false
			continue
		}
		e.rooms[i], e.present[i] = e.substitute(pickRoom(floorRNG)), true
	}

	e.curses = 0
	if floorRNG.Float64() < e.opts.CurseChance {
		c := core.SearchableCurses[floorRNG.Intn(len(core.SearchableCurses))]
		e.curses = c.Mask()
	}
}

// CurrentCharacter implements search.Environment.
func (e *Environment) CurrentCharacter() core.PlayerType { return e.opts.Character }

// IsUnsupportedDifficulty implements search.Environment.
func (e *Environment) IsUnsupportedDifficulty() bool { return e.opts.Greed }

// IsCustomSeed implements search.Environment.
func (e *Environment) IsCustomSeed() bool { return e.opts.CustomSeed }

// ActiveCurses implements search.Environment.
func (e *Environment) ActiveCurses() core.CurseMask { return e.curses }

// RoomAt implements search.Environment. Only the adjacent slots exist.
func (e *Environment) RoomAt(index int) (core.RoomType, bool) {
	for i, idx := range core.AdjacentRoomIndices {
		if idx == index {
			return e.rooms[i], e.present[i]
		}
	}
	return core.RoomNull, false
}

// Reseed implements search.Environment.
func (e *Environment) Reseed() {
	e.reseeds++
	e.roll()
}

// Reseeds returns how many times the run was reseeded.
func (e *Environment) Reseeds() int { return e.reseeds }

// RunSeed returns the current run seed.
func (e *Environment) RunSeed() uint32 { return e.runSeed }

// SeedString formats the current run seed the way the game displays it.
func (e *Environment) SeedString() string { return FormatSeed(e.runSeed) }

// FormatSeed renders a run seed as two groups of four characters.
func FormatSeed(seed uint32) string {
	const alphabet = "ABCDEFGHJKLMNPQRSTWXYZ01234V6789"
	var b [8]byte
	for i := 7; i >= 0; i-- {
		b[i] = alphabet[seed&31]
		seed >>= 5
	}
	return fmt.Sprintf("%s %s", b[:4], b[4:])
}
