package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bubble-catch/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config that 'play' would use, after applying the
search order: --config, ~/.bubblecatch/config.yaml,
./configs/bubblecatch.yaml, built-in defaults.

Use --defaults to print the built-in defaults as a starting point for a
custom file.

Examples:
  bubblecatch config
  bubblecatch config --config ./my-levels.yaml
  bubblecatch config --defaults > ~/.bubblecatch/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		return err
	}

	// Only the classic mode plays the configured levels.
	if err := config.ValidateLevels(cfg.Levels); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: classic mode cannot start: %v\n", err)
	}
	return nil
}
