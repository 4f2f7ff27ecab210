package search

import (
	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/core"
)

// DeriveEnabledRooms returns the room types whose toggle is on. The
// bedroom toggle covers both bedroom variants.
func DeriveEnabledRooms(cfg config.Settings) core.RoomSet {
	rooms := core.NewRoomSet()
	r := cfg.Rooms

	if r.Bedroom {
		rooms.Add(core.RoomCleanBedroom)
		rooms.Add(core.RoomDirtyBedroom)
	}
	if r.Curse {
		rooms.Add(core.RoomCurse)
	}
	if r.Dice {
		rooms.Add(core.RoomDice)
	}
	if r.Library {
		rooms.Add(core.RoomLibrary)
	}
	if r.Miniboss {
		rooms.Add(core.RoomMiniBoss)
	}
	if r.Planetarium {
		rooms.Add(core.RoomPlanetarium)
	}
	if r.Sacrifice {
		rooms.Add(core.RoomSacrifice)
	}
	if r.Secret {
		rooms.Add(core.RoomSecret)
	}
	if r.Shop {
		rooms.Add(core.RoomShop)
	}
	if r.Treasure {
		rooms.Add(core.RoomTreasure)
	}

	return rooms
}

// DeriveEnabledCurses returns the acceptable curses. It is empty when level
// curses are disabled, and holds every searchable curse when they are
// enabled without a specific selection, matching the unmodified game.
func DeriveEnabledCurses(cfg config.Settings) core.CurseSet {
	if !cfg.EnableLevelCurses {
		return core.NewCurseSet()
	}

	curses := selectedCurses(cfg)
	if curses.Len() == 0 {
		return core.AllCurses()
	}
	return curses
}

func selectedCurses(cfg config.Settings) core.CurseSet {
	curses := core.NewCurseSet()
	c := cfg.Curses

	if c.Blind {
		curses.Add(core.CurseBlind)
	}
	if c.Darkness {
		curses.Add(core.CurseDarkness)
	}
	if c.Labyrinth {
		curses.Add(core.CurseLabyrinth)
	}
	if c.Lost {
		curses.Add(core.CurseLost)
	}
	if c.Maze {
		curses.Add(core.CurseMaze)
	}
	if c.Unknown {
		curses.Add(core.CurseUnknown)
	}

	return curses
}

// CursePolicy is the curse condition an accepted seed must meet.
type CursePolicy int

const (
	// CurseAny accepts any curse state.
	CurseAny CursePolicy = iota
	// CurseForbid accepts only floors without a searchable curse.
	CurseForbid
	// CurseRequire accepts only floors with one of the selected curses.
	CurseRequire
)

// String returns a short name for the policy.
func (p CursePolicy) String() string {
	switch p {
	case CurseForbid:
		return "forbid"
	case CurseRequire:
		return "require"
	default:
		return "any"
	}
}

// PolicyFor returns the curse policy cfg asks for.
func PolicyFor(cfg config.Settings) CursePolicy {
	switch {
	case !cfg.EnableLevelCurses:
		return CurseForbid
	case selectedCurses(cfg).Len() > 0:
		return CurseRequire
	default:
		return CurseAny
	}
}
