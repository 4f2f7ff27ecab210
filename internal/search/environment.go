// Package search implements the run-start seed search: it derives the
// enabled room and curse sets from the user's settings and reseeds the run
// until a room next to spawn, or the floor's curse state, matches them.
package search

import "github.com/vovakirdan/trstart/internal/core"

// Environment is the slice of the running game the search needs.
// Every query reflects the most recent Reseed.
type Environment interface {
	// CurrentCharacter returns the active player's type.
	CurrentCharacter() core.PlayerType

	// IsUnsupportedDifficulty reports a greed-family difficulty.
	IsUnsupportedDifficulty() bool

	// IsCustomSeed reports whether the seed was entered by the player.
	IsCustomSeed() bool

	// ActiveCurses returns the current floor's curse bitmask.
	ActiveCurses() core.CurseMask

	// RoomAt returns the type of the room at a grid index. ok is false when
	// the engine has no room data for that slot.
	RoomAt(index int) (room core.RoomType, ok bool)

	// Reseed rerolls the run seed and regenerates the floor.
	Reseed()
}

// Companion is the lookup surface of the optional character extension
// whose characters replace the treasure room slot.
type Companion interface {
	PlayerTypeByName(name string, tainted bool) (core.PlayerType, bool)
}
