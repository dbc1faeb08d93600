package config

import (
	_ "embed"
)

//go:embed defaults/bubblecatch.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  200,
			Height: 400,
		},
		Player: PlayerConfig{
			Width:    20,
			Height:   5,
			MoveStep: 10,
		},
		Bubble: BubbleConfig{
			Radius:    2,
			FallSpeed: 2,
			SpawnRate: 0.1,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
		Levels: []int{2, 3, 4, 5, 6},
	}
}

// DefaultYAML returns the embedded default configuration file.
// Used by `bubblecatch config` to print a starting point for customization.
func DefaultYAML() []byte {
	return defaultYAML
}
