package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/core"
	"github.com/vovakirdan/trstart/internal/search"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List searchable rooms and curses",
	Long: `Shows each room toggle with the room types it accepts next to the
starting room, and each curse toggle with its curse.`,
	Run: runRooms,
}

func runRooms(cmd *cobra.Command, args []string) {
	fmt.Printf("Rooms checked at slots %v around slot %d:\n", core.AdjacentRoomIndices, core.StartingRoomIndex)
	fmt.Println()
	fmt.Printf("  %-12s  %s\n", "Toggle", "Room types")
	fmt.Printf("  %-12s  %s\n", "------", "----------")
	for _, name := range config.RoomNames() {
		var cfg config.Settings
		_ = cfg.Set(name, true)
		fmt.Printf("  %-12s  %s\n", name, search.DeriveEnabledRooms(cfg))
	}

	fmt.Println()
	fmt.Println("Curses:")
	fmt.Println()
	fmt.Printf("  %-12s  %s\n", "Toggle", "Curse")
	fmt.Printf("  %-12s  %s\n", "------", "-----")
	for _, name := range config.CurseNames() {
		cfg := config.Settings{EnableLevelCurses: true}
		_ = cfg.Set(name, true)
		fmt.Printf("  %-12s  %s\n", name, search.DeriveEnabledCurses(cfg))
	}
}
