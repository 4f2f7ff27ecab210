// Package core defines the game-side vocabulary shared by every package:
// room types, level curses, player types and the sets built from them.
package core

import (
	"fmt"
	"sort"
	"strings"
)

// RoomType identifies a room category. Values mirror the game engine's
// room type enumeration so they can be exchanged with scripts unchanged.
type RoomType int

const (
	RoomNull RoomType = iota
	RoomDefault
	RoomShop
	RoomError
	RoomTreasure
	RoomBoss
	RoomMiniBoss
	RoomSecret
	RoomSuperSecret
	RoomArcade
	RoomCurse
	RoomChallenge
	RoomLibrary
	RoomSacrifice
	RoomDevil
	RoomAngel
	RoomDungeon
	RoomBossRush
	RoomCleanBedroom
	RoomDirtyBedroom
	RoomVault
	RoomDice
	RoomBlackMarket
	RoomGreedExit
	RoomPlanetarium
)

var roomNames = map[RoomType]string{
	RoomNull:         "Null Room",
	RoomDefault:      "Default Room",
	RoomShop:         "Shop",
	RoomError:        "I AM ERROR Room",
	RoomTreasure:     "Treasure Room",
	RoomBoss:         "Boss Room",
	RoomMiniBoss:     "Miniboss Room",
	RoomSecret:       "Secret Room",
	RoomSuperSecret:  "Super Secret Room",
	RoomArcade:       "Arcade",
	RoomCurse:        "Curse Room",
	RoomChallenge:    "Challenge Room",
	RoomLibrary:      "Library",
	RoomSacrifice:    "Sacrifice Room",
	RoomDevil:        "Devil Room",
	RoomAngel:        "Angel Room",
	RoomDungeon:      "Crawl Space",
	RoomBossRush:     "Boss Rush Room",
	RoomCleanBedroom: "Clean Bedroom",
	RoomDirtyBedroom: "Dirty Bedroom",
	RoomVault:        "Vault",
	RoomDice:         "Dice Room",
	RoomBlackMarket:  "Black Market",
	RoomGreedExit:    "Greed Exit Room",
	RoomPlanetarium:  "Planetarium",
}

// String returns the in-game display name of the room type.
func (r RoomType) String() string {
	if name, ok := roomNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RoomType(%d)", int(r))
}

// Valid reports whether r is a known engine room type.
func (r RoomType) Valid() bool {
	_, ok := roomNames[r]
	return ok
}

// ParseRoomType resolves a display name or a bare number to a RoomType.
// Matching ignores case and surrounding spaces.
func ParseRoomType(s string) (RoomType, error) {
	s = strings.TrimSpace(s)
	for r, name := range roomNames {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && RoomType(n).Valid() {
		return RoomType(n), nil
	}
	return RoomNull, fmt.Errorf("core: unknown room type %q", s)
}

// StartingRoomIndex is the grid index of the room the player spawns in on
// the first floor.
const StartingRoomIndex = 84

// AdjacentRoomIndices are the four grid slots that always surround the
// starting room, in the order the search inspects them.
var AdjacentRoomIndices = [4]int{71, 83, 85, 97}

// RoomSet is an unordered set of room types.
type RoomSet map[RoomType]struct{}

// NewRoomSet returns a set holding the given room types.
func NewRoomSet(rooms ...RoomType) RoomSet {
	s := make(RoomSet, len(rooms))
	for _, r := range rooms {
		s[r] = struct{}{}
	}
	return s
}

// Add inserts r.
func (s RoomSet) Add(r RoomType) { s[r] = struct{}{} }

// Remove deletes r. Removing an absent room is a no-op.
func (s RoomSet) Remove(r RoomType) { delete(s, r) }

// Has reports whether r is in the set.
func (s RoomSet) Has(r RoomType) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of room types in the set.
func (s RoomSet) Len() int { return len(s) }

// Sorted returns the members ordered by engine value.
func (s RoomSet) Sorted() []RoomType {
	out := make([]RoomType, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy.
func (s RoomSet) Clone() RoomSet {
	out := make(RoomSet, len(s))
	for r := range s {
		out[r] = struct{}{}
	}
	return out
}

// String lists the members by display name.
func (s RoomSet) String() string {
	names := make([]string, 0, len(s))
	for _, r := range s.Sorted() {
		names = append(names, r.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
