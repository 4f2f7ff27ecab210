package luaenv

import (
	"github.com/Shopify/go-lua"

	"github.com/vovakirdan/trstart/internal/core"
)

var roomConstants = []struct {
	name string
	room core.RoomType
}{
	{"NULL", core.RoomNull},
	{"DEFAULT", core.RoomDefault},
	{"SHOP", core.RoomShop},
	{"ERROR", core.RoomError},
	{"TREASURE", core.RoomTreasure},
	{"BOSS", core.RoomBoss},
	{"MINI_BOSS", core.RoomMiniBoss},
	{"SECRET", core.RoomSecret},
	{"SUPER_SECRET", core.RoomSuperSecret},
	{"ARCADE", core.RoomArcade},
	{"CURSE", core.RoomCurse},
	{"CHALLENGE", core.RoomChallenge},
	{"LIBRARY", core.RoomLibrary},
	{"SACRIFICE", core.RoomSacrifice},
	{"DEVIL", core.RoomDevil},
	{"ANGEL", core.RoomAngel},
	{"DUNGEON", core.RoomDungeon},
	{"BOSS_RUSH", core.RoomBossRush},
	{"CLEAN_BEDROOM", core.RoomCleanBedroom},
	{"DIRTY_BEDROOM", core.RoomDirtyBedroom},
	{"VAULT", core.RoomVault},
	{"DICE", core.RoomDice},
	{"BLACK_MARKET", core.RoomBlackMarket},
	{"GREED_EXIT", core.RoomGreedExit},
	{"PLANETARIUM", core.RoomPlanetarium},
}

var curseConstants = []struct {
	name  string
	curse core.Curse
}{
	{"NONE", core.CurseNone},
	{"DARKNESS", core.CurseDarkness},
	{"LABYRINTH", core.CurseLabyrinth},
	{"LOST", core.CurseLost},
	{"UNKNOWN", core.CurseUnknown},
	{"CURSED", core.CurseCursed},
	{"MAZE", core.CurseMaze},
	{"BLIND", core.CurseBlind},
	{"GIANT", core.CurseGiant},
}

// registerConstants installs the RoomType and LevelCurse tables. Curse
// values are bitmask values so scripts can add them together.
func registerConstants(state *lua.State) {
	state.NewTable()
	for _, c := range roomConstants {
		state.PushInteger(int(c.room))
		state.SetField(-2, c.name)
	}
	state.SetGlobal("RoomType")

	state.NewTable()
	for _, c := range curseConstants {
		state.PushInteger(int(c.curse.Mask()))
		state.SetField(-2, c.name)
	}
	state.SetGlobal("LevelCurse")
}

// registerLog installs a Log table forwarding to the environment's logger.
func (e *Environment) registerLog() {
	logFunctions := []lua.RegistryFunction{
		{Name: "info", Function: func(state *lua.State) int {
			e.logger.Info(lua.CheckString(state, 1), "source", "script")
			return 0
		}},
		{Name: "warn", Function: func(state *lua.State) int {
			e.logger.Warn(lua.CheckString(state, 1), "source", "script")
			return 0
		}},
	}

	e.state.NewTable()
	lua.SetFunctions(e.state, logFunctions, 0)
	e.state.SetGlobal("Log")
}
