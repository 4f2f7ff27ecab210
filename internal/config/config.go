// Package config provides the user settings consumed by the run-start search,
// with YAML file loading, environment overrides and the persisted record shape.
package config

import (
	"fmt"
	"sort"
	"strings"
)

// Version tags the persisted settings record. Records carrying any other
// version are discarded in favour of defaults.
const Version = "2.0"

// Reseed limit bounds.
const (
	DefaultReseedLimit = 1000
	MaxReseedLimit     = 3000
)

// Settings is the flat set of toggles plus the reseed budget.
type Settings struct {
	Rooms                  RoomToggles  `yaml:"rooms" envPrefix:"ROOM_"`
	Curses                 CurseToggles `yaml:"curses" envPrefix:"CURSE_"`
	EnableLevelCurses      bool         `yaml:"enable_level_curses" env:"ENABLE_LEVEL_CURSES"`
	EnableModdedCharacters bool         `yaml:"enable_modded_characters" env:"ENABLE_MODDED_CHARACTERS"`
	ReseedLimit            int          `yaml:"reseed_limit" env:"RESEED_LIMIT"`
}

// RoomToggles selects which room categories the search accepts next to spawn.
type RoomToggles struct {
	Bedroom     bool `yaml:"bedroom" env:"BEDROOM"` // clean and dirty bedrooms
	Curse       bool `yaml:"curse" env:"CURSE"`
	Dice        bool `yaml:"dice" env:"DICE"`
	Library     bool `yaml:"library" env:"LIBRARY"`
	Miniboss    bool `yaml:"miniboss" env:"MINIBOSS"`
	Planetarium bool `yaml:"planetarium" env:"PLANETARIUM"`
	Sacrifice   bool `yaml:"sacrifice" env:"SACRIFICE"`
	Secret      bool `yaml:"secret" env:"SECRET"`
	Shop        bool `yaml:"shop" env:"SHOP"`
	Treasure    bool `yaml:"treasure" env:"TREASURE"`
}

// CurseToggles narrows which curses are acceptable when curses are enabled.
// All false means any curse is acceptable.
type CurseToggles struct {
	Blind     bool `yaml:"blind" env:"BLIND"`
	Darkness  bool `yaml:"darkness" env:"DARKNESS"`
	Labyrinth bool `yaml:"labyrinth" env:"LABYRINTH"`
	Lost      bool `yaml:"lost" env:"LOST"`
	Maze      bool `yaml:"maze" env:"MAZE"`
	Unknown   bool `yaml:"unknown" env:"UNKNOWN"`
}

// Normalize clamps the reseed limit into [1, MaxReseedLimit]; a zero or
// negative limit means the default.
func (s *Settings) Normalize() {
	switch {
	case s.ReseedLimit <= 0:
		s.ReseedLimit = DefaultReseedLimit
	case s.ReseedLimit > MaxReseedLimit:
		s.ReseedLimit = MaxReseedLimit
	}
}

// toggle binds a setting name to its field.
type toggle struct {
	name  string
	title string
	field func(*Settings) *bool
}

var roomToggles = []toggle{
	{"bedroom", "Bedrooms", func(s *Settings) *bool { return &s.Rooms.Bedroom }},
	{"curse", "Curse Rooms", func(s *Settings) *bool { return &s.Rooms.Curse }},
	{"dice", "Dice Rooms", func(s *Settings) *bool { return &s.Rooms.Dice }},
	{"library", "Libraries", func(s *Settings) *bool { return &s.Rooms.Library }},
	{"miniboss", "Miniboss Rooms", func(s *Settings) *bool { return &s.Rooms.Miniboss }},
	{"planetarium", "Planetariums", func(s *Settings) *bool { return &s.Rooms.Planetarium }},
	{"sacrifice", "Sacrifice Rooms", func(s *Settings) *bool { return &s.Rooms.Sacrifice }},
	{"secret", "Secret Rooms", func(s *Settings) *bool { return &s.Rooms.Secret }},
	{"shop", "Shops", func(s *Settings) *bool { return &s.Rooms.Shop }},
	{"treasure", "Treasure Rooms", func(s *Settings) *bool { return &s.Rooms.Treasure }},
}

var curseToggles = []toggle{
	{"blind", "Curse of the Blind", func(s *Settings) *bool { return &s.Curses.Blind }},
	{"darkness", "Curse of Darkness", func(s *Settings) *bool { return &s.Curses.Darkness }},
	{"labyrinth", "Curse of the Labyrinth", func(s *Settings) *bool { return &s.Curses.Labyrinth }},
	{"lost", "Curse of the Lost", func(s *Settings) *bool { return &s.Curses.Lost }},
	{"maze", "Curse of the Maze", func(s *Settings) *bool { return &s.Curses.Maze }},
	{"unknown", "Curse of the Unknown", func(s *Settings) *bool { return &s.Curses.Unknown }},
}

var settingToggles = []toggle{
	{"level-curses", "Allow Starting Curses", func(s *Settings) *bool { return &s.EnableLevelCurses }},
	{"modded-characters", "Modded Character Support", func(s *Settings) *bool { return &s.EnableModdedCharacters }},
}

func findToggle(name string) (toggle, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, group := range [][]toggle{roomToggles, curseToggles, settingToggles} {
		for _, t := range group {
			if t.name == name {
				return t, true
			}
		}
	}
	return toggle{}, false
}

// Set flips the named toggle. Names are those returned by ToggleNames.
func (s *Settings) Set(name string, on bool) error {
	t, ok := findToggle(name)
	if !ok {
		return fmt.Errorf("config: unknown setting %q", name)
	}
	*t.field(s) = on
	return nil
}

// Enabled reports the state of the named toggle.
func (s Settings) Enabled(name string) (bool, error) {
	t, ok := findToggle(name)
	if !ok {
		return false, fmt.Errorf("config: unknown setting %q", name)
	}
	return *t.field(&s), nil
}

// ToggleInfo describes one toggle for display.
type ToggleInfo struct {
	Group string
	Name  string
	Title string
	On    bool
}

// Toggles lists every toggle with its current value, grouped the way the
// in-game menu presents them.
func (s Settings) Toggles() []ToggleInfo {
	var out []ToggleInfo
	add := func(group string, ts []toggle) {
		for _, t := range ts {
			out = append(out, ToggleInfo{Group: group, Name: t.name, Title: t.title, On: *t.field(&s)})
		}
	}
	add("Rooms", roomToggles)
	add("Curses", curseToggles)
	add("Settings", settingToggles)
	return out
}

// ToggleNames returns every settable toggle name, sorted.
func ToggleNames() []string {
	var names []string
	for _, group := range [][]toggle{roomToggles, curseToggles, settingToggles} {
		for _, t := range group {
			names = append(names, t.name)
		}
	}
	sort.Strings(names)
	return names
}

// RoomNames returns the room toggle names in menu order.
func RoomNames() []string {
	names := make([]string, len(roomToggles))
	for i, t := range roomToggles {
		names[i] = t.name
	}
	return names
}

// CurseNames returns the curse toggle names in menu order.
func CurseNames() []string {
	names := make([]string, len(curseToggles))
	for i, t := range curseToggles {
		names[i] = t.name
	}
	return names
}
