package main

import (
	"testing"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/storage"
)

func TestApplyAssignments(t *testing.T) {
	cfg := config.DefaultSettings()
	err := applyAssignments(&cfg, []string{"shop=on", "Treasure=off", "blind=yes", "reseed-limit=2500"})
	if err != nil {
		t.Fatalf("applyAssignments() failed: %v", err)
	}

	if !cfg.Rooms.Shop || cfg.Rooms.Treasure {
		t.Errorf("Room toggles not applied: %+v", cfg.Rooms)
	}
	if !cfg.Curses.Blind {
		t.Error("Expected blind curse toggle on")
	}
	if cfg.ReseedLimit != 2500 {
		t.Errorf("ReseedLimit = %d, want 2500", cfg.ReseedLimit)
	}
}

func TestApplyAssignmentsRejectsAll(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing value", []string{"shop"}},
		{"unknown toggle", []string{"arcade=on"}},
		{"bad switch", []string{"shop=maybe"}},
		{"limit too high", []string{"reseed-limit=5000"}},
		{"limit not a number", []string{"reseed-limit=lots"}},
		{"late failure", []string{"shop=on", "nope=off"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSettings()
			if err := applyAssignments(&cfg, tt.args); err == nil {
				t.Fatal("Expected error")
			}
			if cfg != config.DefaultSettings() {
				t.Errorf("Settings changed on error: %+v", cfg)
			}
		})
	}
}

func TestParseSwitch(t *testing.T) {
	for _, v := range []string{"on", "TRUE", "yes", "1"} {
		if on, err := parseSwitch(v); err != nil || !on {
			t.Errorf("parseSwitch(%q) = %v, %v", v, on, err)
		}
	}
	for _, v := range []string{"off", "False", "no", "0"} {
		if on, err := parseSwitch(v); err != nil || on {
			t.Errorf("parseSwitch(%q) = %v, %v", v, on, err)
		}
	}
}

func TestSaveAssignmentsIgnoresEnvironment(t *testing.T) {
	logger, _ := useTempState(t)
	t.Setenv("TRSTART_ROOM_SHOP", "true")

	if err := saveAssignments(logger, []string{"dice=on"}); err != nil {
		t.Fatalf("saveAssignments() failed: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	got, status, err := store.LoadSettings(flagSlot, config.Settings{})
	if err != nil || status != storage.Loaded {
		t.Fatalf("LoadSettings() = %s, %v", status, err)
	}
	if !got.Rooms.Dice {
		t.Error("Expected dice to be saved")
	}
	if got.Rooms.Shop {
		t.Error("Environment override was written to the slot")
	}
	if !got.Rooms.Treasure || !got.Rooms.Planetarium {
		t.Errorf("Expected default rooms to be kept, got %+v", got.Rooms)
	}
}

func TestSaveAssignmentsInvalidLeavesSlot(t *testing.T) {
	logger, _ := useTempState(t)

	if err := saveAssignments(logger, []string{"shop=maybe"}); err == nil {
		t.Fatal("Expected error")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, status, _ := store.LoadSettings(flagSlot, config.Settings{}); status != storage.Missing {
		t.Errorf("Expected no saved slot, got %s", status)
	}
}
