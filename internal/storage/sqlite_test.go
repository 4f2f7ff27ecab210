package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/trstart/internal/config"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	want := config.DefaultSettings()
	want.Rooms.Bedroom = true
	want.Rooms.Planetarium = false
	want.Curses.Blind = true
	want.Curses.Lost = true
	want.EnableModdedCharacters = false
	want.ReseedLimit = 1500

	if err := store.SaveSettings(DefaultSlot, want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, status, err := store.LoadSettings(DefaultSlot, config.DefaultSettings())
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if status != Loaded {
		t.Errorf("Expected status loaded, got %s", status)
	}
	if got != want {
		t.Errorf("Loaded settings mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	first := config.DefaultSettings()
	second := config.DefaultSettings()
	second.Rooms.Shop = true

	if err := store.SaveSettings("profile", first); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	if err := store.SaveSettings("profile", second); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, _, err := store.LoadSettings("profile", config.Settings{})
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if !got.Rooms.Shop {
		t.Error("Expected second save to win")
	}

	slots, err := store.Slots()
	if err != nil {
		t.Fatalf("Slots() failed: %v", err)
	}
	if len(slots) != 1 || slots[0].Slot != "profile" || slots[0].Version != config.Version {
		t.Errorf("Unexpected slots: %+v", slots)
	}
}

func TestStoreLoadFallbacks(t *testing.T) {
	store := openTestStore(t)
	fallback := config.DefaultSettings()

	got, status, err := store.LoadSettings("nobody", fallback)
	if err != nil || status != Missing || got != fallback {
		t.Errorf("Missing slot: got %+v, %s, %v", got, status, err)
	}

	_, err = store.db.Exec(
		`INSERT INTO save_data (slot, version, rooms, reseed_limit) VALUES ('old', '1.11', 'treasure', 1500)`,
	)
	if err != nil {
		t.Fatal(err)
	}
	got, status, err = store.LoadSettings("old", fallback)
	if err != nil || status != VersionMismatch || got != fallback {
		t.Errorf("Old version: got %+v, %s, %v", got, status, err)
	}

	_, err = store.db.Exec(
		`INSERT INTO save_data (slot, version, rooms) VALUES ('junk', ?, 'treasure,arcade')`,
		config.Version,
	)
	if err != nil {
		t.Fatal(err)
	}
	got, status, err = store.LoadSettings("junk", fallback)
	if err != nil || status != Malformed || got != fallback {
		t.Errorf("Malformed record: got %+v, %s, %v", got, status, err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveSettings(DefaultSlot, config.DefaultSettings()); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	if err := store.DeleteSettings(DefaultSlot); err != nil {
		t.Fatalf("DeleteSettings() failed: %v", err)
	}

	_, status, err := store.LoadSettings(DefaultSlot, config.Settings{})
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if status != Missing {
		t.Errorf("Expected missing after delete, got %s", status)
	}
}

func TestStoreEmptyRoomList(t *testing.T) {
	store := openTestStore(t)

	cfg := config.Settings{EnableLevelCurses: false, ReseedLimit: 10}
	if err := store.SaveSettings(DefaultSlot, cfg); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, status, err := store.LoadSettings(DefaultSlot, config.DefaultSettings())
	if err != nil || status != Loaded {
		t.Fatalf("LoadSettings() = %s, %v", status, err)
	}
	if got != cfg {
		t.Errorf("Expected empty selection to survive, got %+v", got)
	}
}
