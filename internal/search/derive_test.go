package search

import (
	"testing"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/core"
)

func TestDeriveEnabledRooms(t *testing.T) {
	var cfg config.Settings
	if rooms := DeriveEnabledRooms(cfg); rooms.Len() != 0 {
		t.Errorf("Expected empty set, got %v", rooms)
	}

	cfg.Rooms.Bedroom = true
	rooms := DeriveEnabledRooms(cfg)
	if rooms.Len() != 2 || !rooms.Has(core.RoomCleanBedroom) || !rooms.Has(core.RoomDirtyBedroom) {
		t.Errorf("Bedroom toggle should add both bedrooms, got %v", rooms)
	}

	for _, name := range config.RoomNames() {
		if err := cfg.Set(name, true); err != nil {
			t.Fatal(err)
		}
	}
	rooms = DeriveEnabledRooms(cfg)
	want := []core.RoomType{
		core.RoomShop, core.RoomTreasure, core.RoomMiniBoss, core.RoomSecret,
		core.RoomCurse, core.RoomLibrary, core.RoomSacrifice, core.RoomCleanBedroom,
		core.RoomDirtyBedroom, core.RoomDice, core.RoomPlanetarium,
	}
	if rooms.Len() != len(want) {
		t.Errorf("Expected %d rooms, got %v", len(want), rooms)
	}
	for _, r := range want {
		if !rooms.Has(r) {
			t.Errorf("Missing %s", r)
		}
	}
}

func TestDeriveEnabledCursesNeverEmptyWhenEnabled(t *testing.T) {
	// Every combination of the six curse toggles, with curses on and off.
	names := config.CurseNames()
	for mask := 0; mask < 1<<len(names); mask++ {
		for _, enabled := range []bool{false, true} {
			cfg := config.Settings{EnableLevelCurses: enabled}
			for i, name := range names {
				if mask&(1<<i) != 0 {
					_ = cfg.Set(name, true)
				}
			}

			curses := DeriveEnabledCurses(cfg)
			switch {
			case !enabled && curses.Len() != 0:
				t.Errorf("mask %06b disabled: expected empty, got %v", mask, curses)
			case enabled && mask == 0 && curses.Len() != len(core.SearchableCurses):
				t.Errorf("no filter: expected all six curses, got %v", curses)
			case enabled && mask != 0 && curses.Len() == 0:
				t.Errorf("mask %06b: expected non-empty set", mask)
			}
		}
	}
}

func TestDeriveEnabledCursesSelection(t *testing.T) {
	cfg := config.Settings{EnableLevelCurses: true}
	cfg.Curses.Blind = true
	cfg.Curses.Maze = true

	curses := DeriveEnabledCurses(cfg)
	if curses.Len() != 2 || !curses.Has(core.CurseBlind) || !curses.Has(core.CurseMaze) {
		t.Errorf("Expected {Blind, Maze}, got %v", curses)
	}
}

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Settings
		want CursePolicy
	}{
		{"disabled", config.Settings{}, CurseForbid},
		{"disabled ignores filter", config.Settings{Curses: config.CurseToggles{Blind: true}}, CurseForbid},
		{"enabled no filter", config.Settings{EnableLevelCurses: true}, CurseAny},
		{"enabled with filter", config.Settings{EnableLevelCurses: true, Curses: config.CurseToggles{Lost: true}}, CurseRequire},
	}
	for _, tt := range tests {
		if got := PolicyFor(tt.cfg); got != tt.want {
			t.Errorf("%s: PolicyFor = %s, want %s", tt.name, got, tt.want)
		}
	}
}
