package config

import (
	_ "embed"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the settings a fresh install starts with:
// treasure rooms and planetariums, any curse allowed, modded characters on.
func DefaultSettings() Settings {
	return Settings{
		Rooms: RoomToggles{
			Planetarium: true,
			Treasure:    true,
		},
		EnableLevelCurses:      true,
		EnableModdedCharacters: true,
		ReseedLimit:            DefaultReseedLimit,
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultSettingsYAML
}
