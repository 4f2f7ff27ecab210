package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trstart/internal/registry"
	"github.com/vovakirdan/trstart/internal/search"
	"github.com/vovakirdan/trstart/internal/sim"
)

var flagShowCompanion bool

var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List base-game characters",
	Long: `Shows the base-game roster. Any other player type counts as a modded
character. With --companion, also lists the simulated extension characters
and the room rule the search applies to them.`,
	Run: runCharacters,
}

func init() {
	charactersCmd.Flags().BoolVar(&flagShowCompanion, "companion", false, "Also list extension characters")
}

func runCharacters(cmd *cobra.Command, args []string) {
	characters := registry.List()

	fmt.Println("Base characters:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, c := range characters {
		if n := len(c.String()); n > maxNameLen {
			maxNameLen = n
		}
	}

	fmt.Printf("  %-4s  %s\n", "ID", "Name")
	fmt.Printf("  %-4s  %s\n", "--", "----")
	for _, c := range characters {
		fmt.Printf("  %-4d  %-*s\n", c.ID, maxNameLen, c.String())
	}

	if flagShowCompanion {
		opts := sim.DefaultOptions()
		opts.Companion = true
		table := search.NewOverrideTable(sim.New(opts))

		fmt.Println()
		fmt.Println("Extension characters:")
		fmt.Println()
		fmt.Printf("  %-4s  %-12s  %s\n", "ID", "Name", "Rule")
		fmt.Printf("  %-4s  %-12s  %s\n", "--", "----", "----")
		for _, o := range table.Entries() {
			fmt.Printf("  %-4d  %-12s  %s\n", o.Character, o.Name, o.Rule)
		}
	}

	fmt.Println()
	fmt.Println("Run 'trstart search --character <id>' to simulate a character.")
}
