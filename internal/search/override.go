package search

import (
	"sort"

	"github.com/vovakirdan/trstart/internal/core"
)

// OverrideRule is how a character changes the searchable room set.
type OverrideRule int

const (
	OverrideNone OverrideRule = iota
	ReplaceTreasureWithDevil
	ReplaceTreasureWithAngel
	StripTreasurePlanetariumShop
)

// String returns a readable name for the rule.
func (r OverrideRule) String() string {
	switch r {
	case ReplaceTreasureWithDevil:
		return "replace treasure with devil"
	case ReplaceTreasureWithAngel:
		return "replace treasure with angel"
	case StripTreasurePlanetariumShop:
		return "strip treasure, planetarium and shop"
	default:
		return "none"
	}
}

// Apply mutates rooms according to the rule. Applying a rule twice has the
// same effect as applying it once.
func (r OverrideRule) Apply(rooms core.RoomSet) {
	switch r {
	case ReplaceTreasureWithDevil:
		replaceTreasure(rooms, core.RoomDevil)
		rooms.Remove(core.RoomPlanetarium)
	case ReplaceTreasureWithAngel:
		replaceTreasure(rooms, core.RoomAngel)
		rooms.Remove(core.RoomPlanetarium)
	case StripTreasurePlanetariumShop:
		rooms.Remove(core.RoomTreasure)
		rooms.Remove(core.RoomPlanetarium)
		rooms.Remove(core.RoomShop)
	}
}

func replaceTreasure(rooms core.RoomSet, with core.RoomType) {
	if rooms.Has(core.RoomTreasure) {
		rooms.Remove(core.RoomTreasure)
		rooms.Add(with)
	}
}

// companionCharacter names a character of the companion extension as the
// extension registers it with the game.
type companionCharacter struct {
	lookup  string
	tainted bool
	display string
	rule    OverrideRule
}

var companionCharacters = []companionCharacter{
	{lookup: "Sin", tainted: false, display: "Sin", rule: ReplaceTreasureWithDevil},
	{lookup: "Sin", tainted: true, display: "The Atoned", rule: ReplaceTreasureWithAngel},
	{lookup: "The Rotten", tainted: true, display: "The Husk", rule: StripTreasurePlanetariumShop},
}

// CharacterOverride is a resolved table entry.
type CharacterOverride struct {
	Character core.PlayerType
	Name      string
	Rule      OverrideRule
}

// OverrideTable maps player types to override rules. It is resolved once
// because the companion's character ids are fixed for the process.
type OverrideTable struct {
	present bool
	entries map[core.PlayerType]CharacterOverride
}

// NewOverrideTable resolves the companion's characters. A nil companion
// yields an empty table and disables overrides.
func NewOverrideTable(c Companion) OverrideTable {
	t := OverrideTable{entries: make(map[core.PlayerType]CharacterOverride)}
	if c == nil {
		return t
	}

	t.present = true
	for _, cc := range companionCharacters {
		id, ok := c.PlayerTypeByName(cc.lookup, cc.tainted)
		if !ok {
			continue
		}
		t.entries[id] = CharacterOverride{Character: id, Name: cc.display, Rule: cc.rule}
	}
	return t
}

// Present reports whether the companion extension was detected.
func (t OverrideTable) Present() bool {
	return t.present
}

// Lookup returns the override for a character, if any.
func (t OverrideTable) Lookup(character core.PlayerType) (CharacterOverride, bool) {
	o, ok := t.entries[character]
	return o, ok
}

// Entries returns every resolved override, ordered by character.
func (t OverrideTable) Entries() []CharacterOverride {
	out := make([]CharacterOverride, 0, len(t.entries))
	for _, o := range t.entries {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Character < out[j].Character })
	return out
}

// ApplyCharacterOverrides applies the character's rule, if any, to rooms
// and returns the override that was used.
func ApplyCharacterOverrides(rooms core.RoomSet, character core.PlayerType, t OverrideTable) (CharacterOverride, bool) {
	o, ok := t.Lookup(character)
	if !ok {
		return CharacterOverride{}, false
	}
	o.Rule.Apply(rooms)
	return o, true
}
