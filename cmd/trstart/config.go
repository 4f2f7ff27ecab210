package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trstart/internal/config"
	"github.com/vovakirdan/trstart/internal/storage"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved settings",
	Long: `Read and write the settings stored in the save slot.

Examples:
  trstart config show
  trstart config set shop=on treasure=off
  trstart config set level-curses=on blind=on reseed-limit=2000
  trstart config reset
  trstart config export ./settings.yaml
  trstart config defaults > ./configs/settings.yaml
  trstart config slots`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the settings a search would use",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <name=value>...",
	Short: "Change saved settings",
	Long: `Change one or more settings and save them to the slot.

Toggles accept on/off, true/false, yes/no or 1/0. reseed-limit takes a
number between 1 and 3000.

Toggle names:
  ` + strings.Join(config.ToggleNames(), ", "),
	Args: cobra.MinimumNArgs(1),
	Run:  runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings in the slot",
	Args:  cobra.NoArgs,
	Run:   runConfigReset,
}

var configExportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the saved settings to a YAML file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigExport,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default settings file",
	Long: `Print the built-in settings file. Save it as ~/.trstart/settings.yaml
or ./configs/settings.yaml to use it as a starting point.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		os.Stdout.Write(config.DefaultYAML())
	},
}

var configSlotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List saved slots",
	Args:  cobra.NoArgs,
	Run:   runConfigSlots,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configExportCmd)
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configSlotsCmd)
}

func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save data: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runConfigShow(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(mustLogger())

	fmt.Printf("Slot: %s\n", flagSlot)

	group := ""
	for _, t := range cfg.Toggles() {
		if t.Group != group {
			group = t.Group
			fmt.Println()
			fmt.Printf("%s:\n", group)
		}
		fmt.Printf("  %-18s  %-24s  %s\n", t.Name, t.Title, onOff(t.On))
	}

	fmt.Println()
	fmt.Printf("Reseed limit: %d\n", cfg.ReseedLimit)
}

func runConfigSet(cmd *cobra.Command, args []string) {
	logger := mustLogger()
	if err := saveAssignments(logger, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("saved settings", "slot", flagSlot, "changes", len(args))
}

// saveAssignments applies name=value pairs to the stored settings and saves
// the slot. Environment overrides are never written.
func saveAssignments(logger *log.Logger, args []string) error {
	cfg := storedSettings(logger)
	if err := applyAssignments(&cfg, args); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SaveSettings(flagSlot, cfg)
}

func runConfigReset(cmd *cobra.Command, _ []string) {
	logger := mustLogger()
	store := openStore()
	defer store.Close()

	if err := store.SaveSettings(flagSlot, config.DefaultSettings()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		os.Exit(1)
	}
	logger.Info("restored default settings", "slot", flagSlot)
}

func runConfigExport(cmd *cobra.Command, args []string) {
	logger := mustLogger()
	cfg := storedSettings(logger)

	if err := config.Save(args[0], cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing settings: %v\n", err)
		os.Exit(1)
	}
	logger.Info("exported settings", "path", args[0])
}

func runConfigSlots(cmd *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	slots, err := store.Slots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing slots: %v\n", err)
		os.Exit(1)
	}

	if len(slots) == 0 {
		fmt.Println("No saved slots.")
		fmt.Println()
		fmt.Println("Run 'trstart config set <name=value>' to create one.")
		return
	}

	maxSlotLen := 4 // "Slot" header
	for _, s := range slots {
		if len(s.Slot) > maxSlotLen {
			maxSlotLen = len(s.Slot)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxSlotLen, "Slot", "Version", "Updated")
	fmt.Printf("  %-*s  %-7s  %s\n", maxSlotLen, "----", "-------", "-------")
	for _, s := range slots {
		updated := "-"
		if !s.UpdatedAt.IsZero() {
			updated = s.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-*s  %-7s  %s\n", maxSlotLen, s.Slot, s.Version, updated)
	}
}

// applyAssignments applies name=value pairs to cfg. Nothing is changed if
// any pair is invalid.
func applyAssignments(cfg *config.Settings, args []string) error {
	next := *cfg
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("expected name=value, got %q", arg)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)

		if name == "reseed-limit" {
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 || n > config.MaxReseedLimit {
				return fmt.Errorf("reseed-limit must be a number between 1 and %d, got %q", config.MaxReseedLimit, value)
			}
			next.ReseedLimit = n
			continue
		}

		on, err := parseSwitch(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := next.Set(name, on); err != nil {
			return err
		}
	}
	*cfg = next
	return nil
}

func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", value)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
