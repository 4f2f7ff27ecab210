// Package storage provides SQLite-based persistence for search settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/trstart/internal/config"
)

// DefaultSlot is the save slot used when none is given.
const DefaultSlot = "default"

// Store manages the SQLite database connection for save data.
type Store struct {
	db *sql.DB
}

// LoadStatus tells how LoadSettings produced its result.
type LoadStatus int

const (
	// Loaded means the stored record was used.
	Loaded LoadStatus = iota
	// Missing means the slot has never been saved.
	Missing
	// VersionMismatch means the record was written by another version.
	VersionMismatch
	// Malformed means the record could not be decoded.
	Malformed
)

// String returns a lowercase name for the status.
func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Missing:
		return "missing"
	case VersionMismatch:
		return "version mismatch"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// SlotInfo describes one saved slot.
type SlotInfo struct {
	Slot      string
	Version   string
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS save_data (
			slot TEXT PRIMARY KEY,
			version TEXT NOT NULL,
			rooms TEXT NOT NULL DEFAULT '',
			curses_enabled INTEGER NOT NULL DEFAULT 1,
			curses TEXT NOT NULL DEFAULT '',
			reseed_limit INTEGER NOT NULL DEFAULT 0,
			modded_characters INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSettings stores cfg under slot, replacing any previous record.
func (s *Store) SaveSettings(slot string, cfg config.Settings) error {
	r := cfg.Record()
	_, err := s.db.Exec(
		`INSERT INTO save_data (slot, version, rooms, curses_enabled, curses, reseed_limit, modded_characters, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
			version = excluded.version,
			rooms = excluded.rooms,
			curses_enabled = excluded.curses_enabled,
			curses = excluded.curses,
			reseed_limit = excluded.reseed_limit,
			modded_characters = excluded.modded_characters,
			updated_at = CURRENT_TIMESTAMP`,
		slot, r.Version, strings.Join(r.Rooms, ","), r.Curse.Enabled,
		strings.Join(r.Curse.Types, ","), r.ReseedLimit, r.ModdedCharacters,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// LoadSettings reads the settings stored under slot. A missing, outdated or
// undecodable record yields fallback with the matching status; only a
// database failure is returned as an error.
func (s *Store) LoadSettings(slot string, fallback config.Settings) (config.Settings, LoadStatus, error) {
	var (
		r               config.Record
		rooms, curses   string
		cursesEnabled   bool
		moddedCharacter bool
	)
	err := s.db.QueryRow(
		`SELECT version, rooms, curses_enabled, curses, reseed_limit, modded_characters
		 FROM save_data
		 WHERE slot = ?`,
		slot,
	).Scan(&r.Version, &rooms, &cursesEnabled, &curses, &r.ReseedLimit, &moddedCharacter)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, Missing, nil
	}
	if err != nil {
		return fallback, Malformed, fmt.Errorf("storage: cannot query settings: %w", err)
	}

	r.Rooms = splitNames(rooms)
	r.Curse = config.CurseRecord{Enabled: cursesEnabled, Types: splitNames(curses)}
	r.ModdedCharacters = moddedCharacter

	cfg, err := config.FromRecord(r)
	switch {
	case errors.Is(err, config.ErrVersionMismatch):
		return fallback, VersionMismatch, nil
	case err != nil:
		return fallback, Malformed, nil
	}
	return cfg, Loaded, nil
}

// DeleteSettings removes the record stored under slot.
func (s *Store) DeleteSettings(slot string) error {
	_, err := s.db.Exec("DELETE FROM save_data WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot delete settings: %w", err)
	}
	return nil
}

// Slots lists every saved slot, ordered by name.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query(`SELECT slot, version, updated_at FROM save_data ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &info.Version, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			info.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				info.UpdatedAt = parsed
			}
		}
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}

func splitNames(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
