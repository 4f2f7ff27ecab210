// Package luaenv exposes a Lua script as a search environment, so a game
// state can be described or replayed by a small script instead of a
// running game.
//
// The script defines a global Game table:
//
//	Game = {
//	  character = function() return 0 end,          -- player type
//	  is_greed = function() return false end,
//	  is_custom_seed = function() return false end,
//	  curses = function() return LevelCurse.BLIND end, -- curse bitmask
//	  room_at = function(index) return RoomType.TREASURE end, -- or "Treasure Room"; nil if absent
//	  reseed = function() end,
//	  player_type_by_name = function(name, tainted) end, -- optional
//	}
//
// RoomType and LevelCurse constant tables plus a Log table (info, warn) are
// provided before the script runs.
package luaenv

import (
	"fmt"
	"io"

	"github.com/Shopify/go-lua"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/trstart/internal/core"
)

const gameTable = "Game"

var requiredFunctions = []string{
	"character",
	"is_greed",
	"is_custom_seed",
	"curses",
	"room_at",
	"reseed",
}

// Environment is a search environment backed by a Lua state.
// A script error inside a query is logged and answered with a zero value.
type Environment struct {
	state     *lua.State
	logger    *log.Logger
	companion bool
	failures  int
}

// LoadFile runs the script at path and validates its Game table.
func LoadFile(path string, logger *log.Logger) (*Environment, error) {
	e := newEnvironment(logger)
	if err := lua.DoFile(e.state, path); err != nil {
		return nil, fmt.Errorf("luaenv: run %s: %w", path, err)
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// LoadString runs src as a script and validates its Game table.
func LoadString(src string, logger *log.Logger) (*Environment, error) {
	e := newEnvironment(logger)
	if err := lua.DoString(e.state, src); err != nil {
		return nil, fmt.Errorf("luaenv: run script: %w", err)
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func newEnvironment(logger *log.Logger) *Environment {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	state := lua.NewState()
	lua.OpenLibraries(state)

	e := &Environment{state: state, logger: logger}
	registerConstants(state)
	e.registerLog()
	return e
}

func (e *Environment) validate() error {
	e.state.Global(gameTable)
	defer e.state.Pop(1)

	if !e.state.IsTable(-1) {
		return fmt.Errorf("luaenv: script must define a %s table", gameTable)
	}
	for _, name := range requiredFunctions {
		e.state.Field(-1, name)
		ok := e.state.IsFunction(-1)
		e.state.Pop(1)
		if !ok {
			return fmt.Errorf("luaenv: %s.%s must be a function", gameTable, name)
		}
	}

	e.state.Field(-1, "player_type_by_name")
	e.companion = e.state.IsFunction(-1)
	e.state.Pop(1)
	return nil
}

// call invokes Game.<name>(args...) and runs read with the single result on
// top of the stack. The stack is restored afterwards.
func (e *Environment) call(name string, read func(*lua.State), args ...any) bool {
	top := e.state.Top()
	defer e.state.SetTop(top)

	e.state.Global(gameTable)
	e.state.Field(-1, name)
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			e.state.PushInteger(v)
		case bool:
			e.state.PushBoolean(v)
		case string:
			e.state.PushString(v)
		default:
			e.state.PushNil()
		}
	}

	if err := e.state.ProtectedCall(len(args), 1, 0); err != nil {
		e.failures++
		e.logger.Warn("script call failed", "function", gameTable+"."+name, "error", err)
		return false
	}
	if read != nil {
		read(e.state)
	}
	return true
}

// Failures returns the number of script calls that raised an error.
func (e *Environment) Failures() int { return e.failures }

// HasCompanion reports whether the script defines player_type_by_name.
func (e *Environment) HasCompanion() bool { return e.companion }

// CurrentCharacter implements search.Environment.
func (e *Environment) CurrentCharacter() core.PlayerType {
	character := core.PlayerPossessor
	e.call("character", func(l *lua.State) {
		if n, ok := l.ToInteger(-1); ok {
			character = core.PlayerType(n)
		}
	})
	return character
}

// IsUnsupportedDifficulty implements search.Environment.
func (e *Environment) IsUnsupportedDifficulty() bool {
	var greed bool
	e.call("is_greed", func(l *lua.State) { greed = l.ToBoolean(-1) })
	return greed
}

// IsCustomSeed implements search.Environment.
func (e *Environment) IsCustomSeed() bool {
	var custom bool
	e.call("is_custom_seed", func(l *lua.State) { custom = l.ToBoolean(-1) })
	return custom
}

// ActiveCurses implements search.Environment.
func (e *Environment) ActiveCurses() core.CurseMask {
	var mask core.CurseMask
	e.call("curses", func(l *lua.State) {
		if n, ok := l.ToInteger(-1); ok && n > 0 {
			mask = core.CurseMask(n)
		}
	})
	return mask
}

// RoomAt implements search.Environment. The script may answer a room type
// number or a display name such as "Treasure Room". nil or an unknown room
// means the slot has no data.
func (e *Environment) RoomAt(index int) (core.RoomType, bool) {
	room, found := core.RoomNull, false
	e.call("room_at", func(l *lua.State) {
		switch l.TypeOf(-1) {
		case lua.TypeNumber:
			if n, ok := l.ToInteger(-1); ok && core.RoomType(n).Valid() {
				room, found = core.RoomType(n), true
			}
		case lua.TypeString:
			name, _ := l.ToString(-1)
			if r, err := core.ParseRoomType(name); err == nil {
				room, found = r, true
			} else {
				e.logger.Warn("unknown room name", "slot", index, "error", err)
			}
		}
	}, index)
	return room, found
}

// Reseed implements search.Environment.
func (e *Environment) Reseed() {
	e.call("reseed", nil)
}

// PlayerTypeByName implements search.Companion.
func (e *Environment) PlayerTypeByName(name string, tainted bool) (core.PlayerType, bool) {
	if !e.companion {
		return 0, false
	}
	id, found := core.PlayerType(0), false
	e.call("player_type_by_name", func(l *lua.State) {
		if l.TypeOf(-1) != lua.TypeNumber {
			return
		}
		if n, ok := l.ToInteger(-1); ok && n >= 0 {
			id, found = core.PlayerType(n), true
		}
	}, name, tainted)
	return id, found
}
