package sim

import (
	"context"
	"testing"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/core"
	"github.com/vovakirdan/trstart/internal/search"
)

func snapshot(e *Environment) ([4]core.RoomType, [4]bool, core.CurseMask) {
	var rooms [4]core.RoomType
	var present [4]bool
	for i, idx := range core.AdjacentRoomIndices {
		rooms[i], present[i] = e.RoomAt(idx)
	}
	return rooms, present, e.ActiveCurses()
}

func TestDeterminism(t *testing.T) {
	// Two environments with the same seed should produce identical floors
	opts := DefaultOptions()
	opts.Seed = 12345

	e1 := New(opts)
	e2 := New(opts)

	for i := 0; i < 200; i++ {
		r1, p1, c1 := snapshot(e1)
		r2, p2, c2 := snapshot(e2)
		if r1 != r2 || p1 != p2 || c1 != c2 {
			t.Fatalf("Floor mismatch after %d reseeds: %v/%v/%s vs %v/%v/%s", i, r1, p1, c1, r2, p2, c2)
		}
		if e1.RunSeed() != e2.RunSeed() {
			t.Fatalf("Run seed mismatch after %d reseeds", i)
		}
		e1.Reseed()
		e2.Reseed()
	}

	if e1.Reseeds() != 200 {
		t.Errorf("Expected 200 reseeds, got %d", e1.Reseeds())
	}
}

func TestReseedChangesSeed(t *testing.T) {
	e := New(DefaultOptions())
	seen := map[uint32]bool{e.RunSeed(): true}
	for i := 0; i < 50; i++ {
		e.Reseed()
		seen[e.RunSeed()] = true
	}
	if len(seen) < 45 {
		t.Errorf("Expected mostly distinct run seeds, got %d unique of 51", len(seen))
	}
}

func TestRoomAtOnlyAdjacentSlots(t *testing.T) {
	opts := DefaultOptions()
	opts.MissingRoomChance = 0
	e := New(opts)

	for _, idx := range core.AdjacentRoomIndices {
		if _, ok := e.RoomAt(idx); !ok {
			t.Errorf("Slot %d should have data", idx)
		}
	}
	if _, ok := e.RoomAt(core.StartingRoomIndex); ok {
		t.Error("Starting room is not an adjacent slot")
	}
}

func TestCurseRates(t *testing.T) {
	opts := DefaultOptions()
	opts.CurseChance = 1
	e := New(opts)
	for i := 0; i < 100; i++ {
		if len(e.ActiveCurses().Curses()) != 1 {
			t.Fatalf("Expected exactly one curse, got %s", e.ActiveCurses())
		}
		e.Reseed()
	}

	opts.CurseChance = 0
	e = New(opts)
	for i := 0; i < 100; i++ {
		if e.ActiveCurses() != 0 {
			t.Fatalf("Expected no curse, got %s", e.ActiveCurses())
		}
		e.Reseed()
	}
}

func TestHuskFloorsHaveNoTreasure(t *testing.T) {
	opts := DefaultOptions()
	opts.Companion = true
	opts.Character = TheHusk
	e := New(opts)

	for i := 0; i < 500; i++ {
		for _, idx := range core.AdjacentRoomIndices {
			r, _ := e.RoomAt(idx)
			if r == core.RoomTreasure || r == core.RoomShop || r == core.RoomPlanetarium {
				t.Fatalf("Husk floor contains %s", r)
			}
		}
		e.Reseed()
	}
}

func TestPlayerTypeByName(t *testing.T) {
	e := New(DefaultOptions())
	if _, ok := e.PlayerTypeByName("Sin", false); ok {
		t.Error("Companion lookups should fail when not installed")
	}

	opts := DefaultOptions()
	opts.Companion = true
	e = New(opts)
	if id, ok := e.PlayerTypeByName("Sin", true); !ok || id != TheAtoned {
		t.Errorf("Expected TheAtoned, got %d, %v", id, ok)
	}
	if _, ok := e.PlayerTypeByName("Isaac", false); ok {
		t.Error("Unknown names should not resolve")
	}
}

func TestFormatSeed(t *testing.T) {
	s := FormatSeed(0)
	if s != "AAAA AAAA" {
		t.Errorf("FormatSeed(0) = %q", s)
	}
	if len(FormatSeed(0xDEADBEEF)) != 9 {
		t.Errorf("Unexpected seed length: %q", FormatSeed(0xDEADBEEF))
	}
}

func TestSearchAgainstSimulator(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 7
	env := New(opts)

	cfg := config.DefaultSettings()
	res := search.New(nil).Run(context.Background(), cfg, env)

	if res.Outcome != search.FoundRoom {
		t.Fatalf("Expected FoundRoom, got %s", res.Outcome)
	}
	if res.Reseeds != env.Reseeds() {
		t.Errorf("Result reseeds %d, environment reseeds %d", res.Reseeds, env.Reseeds())
	}
	if r, ok := env.RoomAt(res.MatchedSlot); !ok || r != res.MatchedRoom {
		t.Errorf("Environment slot %d holds %s, result says %s", res.MatchedSlot, r, res.MatchedRoom)
	}
}

func TestSearchSinAgainstSimulator(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 99
	opts.Companion = true
	opts.Character = Sin
	env := New(opts)

	res := search.New(nil, search.WithCompanion(env)).Run(context.Background(), config.DefaultSettings(), env)

	if res.Outcome != search.FoundRoom || res.MatchedRoom != core.RoomDevil {
		t.Errorf("Expected a devil room, got %s %s", res.Outcome, res.MatchedRoom)
	}
}
