package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bubble-catch/internal/platform/tui"
	"github.com/vovakirdan/bubble-catch/internal/registry"
	"github.com/vovakirdan/bubble-catch/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (classic if omitted).

Controls:
  Any key        - Start
  Left/A/H       - Move paddle left
  Right/D/L      - Move paddle right
  Esc            - Stop the run / leave
  Enter          - Play again (after the run ends)
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Examples:
  bubblecatch play
  bubblecatch play marathon
  bubblecatch play quick --seed 42
  bubblecatch play --config ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := "classic"
	if len(args) > 0 {
		mode = args[0]
	}

	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q, run 'bubblecatch list' to see available modes", mode)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	setupGames(logger)

	cfg := runtimeConfig()
	game, err := registry.Create(mode, cfg)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil // Continue without storage - game still works
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, logger, cfg)
}
