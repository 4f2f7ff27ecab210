// Package registry provides a global roster of base-game characters.
// Any player type that is not registered here is treated as a modded
// character, which lets the search honour the modded-character toggle
// without querying the game for its roster size.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/trstart/internal/core"
)

// Character contains metadata about a registered character.
type Character struct {
	ID      core.PlayerType
	Name    string
	Tainted bool
}

// String returns the display name, prefixed with "Tainted" where it applies.
func (c Character) String() string {
	if c.Tainted {
		return "Tainted " + c.Name
	}
	return c.Name
}

var (
	characters = make(map[core.PlayerType]Character)
	mu         sync.RWMutex
)

// Register adds a character to the roster.
// Panics if a character with the same ID is already registered.
func Register(c Character) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := characters[c.ID]; exists {
		panic(fmt.Sprintf("registry: character %d already registered", c.ID))
	}

	characters[c.ID] = c
}

// List returns all registered characters, sorted by ID.
func List() []Character {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Character, 0, len(characters))
	for _, c := range characters {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the character registered under id.
func Lookup(id core.PlayerType) (Character, bool) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := characters[id]
	return c, ok
}

// IsModded reports whether id is absent from the base roster.
func IsModded(id core.PlayerType) bool {
	_, ok := Lookup(id)
	return !ok
}

// Name returns a printable name for id, including unregistered ids.
func Name(id core.PlayerType) string {
	if c, ok := Lookup(id); ok {
		return c.String()
	}
	return fmt.Sprintf("modded character #%d", id)
}
