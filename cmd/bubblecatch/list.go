package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-catch/internal/config"
	"github.com/vovakirdan/bubble-catch/internal/games/bubblecatch"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long: `Shows every registered game mode, its level table and the number of
catches needed to win it. The classic mode plays the levels from the
game config.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println("Game modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range bubblecatch.Modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-26s  %-7s  %-7s  %s\n", maxIDLen, "ID", "Title", "Levels", "Catches", "Colors per level")
	fmt.Printf("  %-*s  %-26s  %-7s  %-7s  %s\n", maxIDLen, "--", "-----", "------", "-------", "----------------")

	for _, m := range bubblecatch.Modes {
		levels := m.Levels
		if levels == nil {
			levels = bubblecatch.Levels(cfg.Levels)
		}

		parts := make([]string, levels.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(levels.Colors(i))
		}
		colors := strings.Join(parts, " ")
		if err := levels.Validate(); err != nil {
			colors += "  (invalid: " + err.Error() + ")"
		}

		fmt.Printf("  %-*s  %-26s  %-7d  %-7d  %s\n", maxIDLen, m.ID, m.Title, levels.Len(), levels.Total(), colors)
	}

	fmt.Println()
	fmt.Println("Run 'bubblecatch play <id>' to play a mode.")
	return nil
}
