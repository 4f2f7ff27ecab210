package sim

import (
	"math/rand"

	"github.com/vovakirdan/trstart/internal/core"
	"github.com/vovakirdan/trstart/internal/registry"
)

// roomWeight is one entry of the adjacent-slot room table.
type roomWeight struct {
	room   core.RoomType
	weight int
}

// adjacentRooms approximates how often each room type ends up in a slot
// next to the first floor's starting room.
var adjacentRooms = []roomWeight{
	{core.RoomDefault, 640},
	{core.RoomBoss, 40},
	{core.RoomTreasure, 90},
	{core.RoomShop, 55},
	{core.RoomSecret, 35},
	{core.RoomSuperSecret, 15},
	{core.RoomMiniBoss, 20},
	{core.RoomCurse, 18},
	{core.RoomSacrifice, 14},
	{core.RoomLibrary, 12},
	{core.RoomCleanBedroom, 8},
	{core.RoomDirtyBedroom, 8},
	{core.RoomDice, 9},
	{core.RoomArcade, 6},
	{core.RoomChallenge, 6},
	{core.RoomPlanetarium, 24},
}

var totalRoomWeight = func() int {
	total := 0
	for _, w := range adjacentRooms {
		total += w.weight
	}
	return total
}()

func pickRoom(rng *rand.Rand) core.RoomType {
	n := rng.Intn(totalRoomWeight)
	for _, w := range adjacentRooms {
		if n < w.weight {
			return w.room
		}
		n -= w.weight
	}
	return core.RoomDefault
}

// Player types the simulated character extension registers.
const (
	Sin core.PlayerType = registry.FirstModded + 4 + iota
	TheAtoned
	TheHusk
)

// HasCompanion reports whether the simulated character extension is installed.
func (e *Environment) HasCompanion() bool { return e.opts.Companion }

// PlayerTypeByName resolves the extension's characters when it is installed.
func (e *Environment) PlayerTypeByName(name string, tainted bool) (core.PlayerType, bool) {
	if !e.opts.Companion {
		return 0, false
	}
	switch {
	case name == "Sin" && !tainted:
		return Sin, true
	case name == "Sin" && tainted:
		return TheAtoned, true
	case name == "The Rotten" && tainted:
		return TheHusk, true
	}
	return 0, false
}

// substitute applies the room replacements the extension's characters
// make to floor generation.
func (e *Environment) substitute(room core.RoomType) core.RoomType {
	if !e.opts.Companion {
		return room
	}
	switch e.opts.Character {
	case Sin:
		switch room {
		case core.RoomTreasure:
			return core.RoomDevil
		case core.RoomPlanetarium:
			return core.RoomDefault
		}
	case TheAtoned:
		switch room {
		case core.RoomTreasure:
			return core.RoomAngel
		case core.RoomPlanetarium:
			return core.RoomDefault
		}
	case TheHusk:
		switch room {
		case core.RoomTreasure, core.RoomPlanetarium, core.RoomShop:
			return core.RoomDefault
		}
	}
	return room
}
