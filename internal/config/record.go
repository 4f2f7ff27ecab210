package config

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionMismatch is returned for records written by another version.
	ErrVersionMismatch = errors.New("config: settings record version mismatch")
	// ErrMalformed is returned for records naming unknown rooms or curses.
	ErrMalformed = errors.New("config: malformed settings record")
)

// Record is the persisted shape of Settings: enabled toggles are stored by
// name so that adding a toggle does not shift existing data.
type Record struct {
	Version          string
	Rooms            []string
	Curse            CurseRecord
	ReseedLimit      int
	ModdedCharacters bool
}

// CurseRecord holds the curse part of a Record.
type CurseRecord struct {
	Enabled bool
	Types   []string
}

// Record converts s into its persisted shape.
func (s Settings) Record() Record {
	r := Record{
		Version:          Version,
		Rooms:            []string{},
		Curse:            CurseRecord{Enabled: s.EnableLevelCurses, Types: []string{}},
		ReseedLimit:      s.ReseedLimit,
		ModdedCharacters: s.EnableModdedCharacters,
	}
	for _, t := range roomToggles {
		if *t.field(&s) {
			r.Rooms = append(r.Rooms, t.name)
		}
	}
	for _, t := range curseToggles {
		if *t.field(&s) {
			r.Curse.Types = append(r.Curse.Types, t.name)
		}
	}
	return r
}

// FromRecord rebuilds Settings from a persisted record. The result is
// normalized. Callers fall back to defaults on any error.
func FromRecord(r Record) (Settings, error) {
	if r.Version != Version {
		return Settings{}, fmt.Errorf("%w: got %q, want %q", ErrVersionMismatch, r.Version, Version)
	}

	var s Settings
	for _, name := range r.Rooms {
		if !isMember(roomToggles, name) {
			return Settings{}, fmt.Errorf("%w: unknown room %q", ErrMalformed, name)
		}
		_ = s.Set(name, true)
	}
	for _, name := range r.Curse.Types {
		if !isMember(curseToggles, name) {
			return Settings{}, fmt.Errorf("%w: unknown curse %q", ErrMalformed, name)
		}
		_ = s.Set(name, true)
	}
	s.EnableLevelCurses = r.Curse.Enabled
	s.EnableModdedCharacters = r.ModdedCharacters
	s.ReseedLimit = r.ReseedLimit
	s.Normalize()
	return s, nil
}

func isMember(group []toggle, name string) bool {
	for _, t := range group {
		if t.name == name {
			return true
		}
	}
	return false
}
