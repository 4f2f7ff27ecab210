package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/storage"
)

// warnSource logs a settings source that was skipped.
func warnSource(logger *log.Logger) config.WarnFunc {
	return func(source string, err error) {
		logger.Warn("skipped settings source", "source", source, "error", err)
	}
}

// storedSettings resolves the settings as saved: the slot if it is usable,
// otherwise the settings file, otherwise defaults. Environment overrides
// are not applied, so the result is safe to write back. Problems are logged
// and never fatal.
func storedSettings(logger *log.Logger) config.Settings {
	base := config.LoadFile(flagConfigPath, warnSource(logger))

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open save data, using settings file", "error", err)
		return base
	}
	defer store.Close()

	cfg, status, err := store.LoadSettings(flagSlot, base)
	if err != nil {
		logger.Warn("could not read save data, using settings file", "slot", flagSlot, "error", err)
		return base
	}
	switch status {
	case storage.VersionMismatch, storage.Malformed:
		logger.Warn("discarded saved settings, using settings file", "slot", flagSlot, "reason", status)
	case storage.Missing:
		logger.Debug("no saved settings", "slot", flagSlot)
	}
	return cfg
}

// loadSettings resolves the settings a search runs with: storedSettings
// with TRSTART_* environment overrides on top.
func loadSettings(logger *log.Logger) config.Settings {
	cfg := storedSettings(logger)
	if err := config.ApplyEnv(&cfg); err != nil {
		warnSource(logger)("environment", err)
	}
	cfg.Normalize()
	return cfg
}
