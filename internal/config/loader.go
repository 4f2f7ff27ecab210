package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. TRSTART_RESEED_LIMIT
// or TRSTART_ROOM_SHOP.
const EnvPrefix = "TRSTART_"

// WarnFunc receives a settings source that could not be used and why.
type WarnFunc func(source string, err error)

// localConfigPath is the settings file looked up relative to the working directory.
const localConfigPath = "configs/settings.yaml"

// Load loads the settings a search runs with: LoadFile plus environment
// overrides, normalized. It never fails; every source that cannot be used
// is reported to warn and skipped.
func Load(customPath string, warn WarnFunc) Settings {
	if warn == nil {
		warn = func(string, error) {}
	}
	cfg := LoadFile(customPath, warn)
	if err := ApplyEnv(&cfg); err != nil {
		warn("environment", err)
	}
	cfg.Normalize()
	return cfg
}

// LoadFile loads settings from the first usable file.
// Search order: customPath -> ~/.trstart/settings.yaml -> ./configs/settings.yaml -> embedded default
// A missing optional file is skipped silently; a missing customPath or any
// file that does not parse is reported to warn. Environment overrides are
// not applied.
func LoadFile(customPath string, warn WarnFunc) Settings {
	if warn == nil {
		warn = func(string, error) {}
	}

	var paths []string
	if customPath != "" {
		paths = append(paths, customPath)
	}
	if userCfgPath := userConfigPath("settings.yaml"); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	paths = append(paths, localConfigPath)

	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if (customPath != "" && i == 0) || !errors.Is(err, fs.ErrNotExist) {
				warn(path, fmt.Errorf("failed to read config: %w", err))
			}
			continue
		}

		// Fields missing from a file keep their default value.
		cfg := DefaultSettings()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			warn(path, fmt.Errorf("failed to parse config: %w", err))
			continue
		}
		cfg.Normalize()
		return cfg
	}

	// Use embedded default YAML
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(defaultSettingsYAML, &cfg); err != nil {
		warn("embedded defaults", err)
		return DefaultSettings()
	}
	cfg.Normalize()
	return cfg
}

// ApplyEnv overlays TRSTART_* environment variables onto cfg. Variables
// that are not set leave the corresponding field untouched. On error cfg
// is left unchanged.
func ApplyEnv(cfg *Settings) error {
	next := *cfg
	if err := env.ParseWithOptions(&next, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}
	*cfg = next
	return nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Settings) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trstart", filename)
}
