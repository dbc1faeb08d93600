// bubblecatch is a terminal bubble catching game.
//
// Usage:
//
//	bubblecatch list              - List game modes
//	bubblecatch play [mode]       - Play a mode (default: classic)
//	bubblecatch menu              - Start menu to pick modes interactively
//	bubblecatch scores [mode]     - Show best runs for a mode
//	bubblecatch serve             - Start SSH server for remote play
//	bubblecatch config            - Print or check the game config
//
// Global flags:
//
//	--fps <rate>       - Override the simulation tick rate
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.bubblecatch/runs.db)
//	--config <path>    - Use a custom game config YAML
//	--log-file <path>  - Write game logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bubble-catch/internal/core"
	"github.com/vovakirdan/bubble-catch/internal/games/bubblecatch"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubblecatch",
	Short: "Bubble Catch - catch falling bubbles in color order",
	Long: `Bubble Catch is a terminal arcade game. Bubbles of several colors
fall down the field; move the paddle and catch them in the required
color order. Catching a wrong color ends the run.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  scores   - View best runs
  serve    - Start SSH server for remote play
  config   - Print or check the game config

Examples:
  bubblecatch play
  bubblecatch play quick --seed 42
  bubblecatch menu --log-file ./game.log
  bubblecatch serve --ssh :2222
  bubblecatch scores classic`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = value from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bubblecatch/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupGames points registry factories at the config file and logger.
func setupGames(logger *log.Logger) {
	bubblecatch.SetConfigPath(flagConfig)
	bubblecatch.SetLogger(logger)
}

// openLogger returns a logger writing to --log-file. The terminal belongs
// to the TUI, so without the flag logs are discarded. The returned function
// closes the file.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "bubblecatch",
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig builds the runtime settings from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
