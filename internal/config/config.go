// Package config provides YAML-based game configuration loading and
// validation for bubble-catch.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/bubble-catch/internal/core"
)

// Config contains all tunable parameters of the simulation.
type Config struct {
	Field  FieldConfig  `yaml:"field"`
	Player PlayerConfig `yaml:"player"`
	Bubble BubbleConfig `yaml:"bubble"`
	Loop   LoopConfig   `yaml:"loop"`
	Levels []int        `yaml:"levels"`
}

// FieldConfig defines the play area in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MoveStep float64 `yaml:"move_step"`
}

// BubbleConfig defines falling bubbles.
type BubbleConfig struct {
	Radius    float64 `yaml:"radius"`
	FallSpeed float64 `yaml:"fall_speed"`
	SpawnRate float64 `yaml:"spawn_rate"`
}

// LoopConfig defines the simulation pacing.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate checks that the configuration describes a playable game.
// All problems are reported together.
func (c Config) Validate() error {
	errs := c.settingsErrors()
	if err := ValidateLevels(c.Levels); err != nil {
		errs = append(errs, err)
	}
	return joinInvalid(errs)
}

// ValidateSettings checks everything except the level table, for games
// that bring their own levels.
func (c Config) ValidateSettings() error {
	return joinInvalid(c.settingsErrors())
}

func (c Config) settingsErrors() []error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Height*2 > c.Field.Height {
		errs = append(errs, fmt.Errorf("player height %v does not fit the field", c.Player.Height))
	}
	if c.Player.MoveStep <= 0 {
		errs = append(errs, fmt.Errorf("player move_step must be positive, got %v", c.Player.MoveStep))
	}
	if c.Bubble.Radius < 0 {
		errs = append(errs, fmt.Errorf("bubble radius must not be negative, got %v", c.Bubble.Radius))
	}
	if c.Bubble.FallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("bubble fall_speed must be positive, got %v", c.Bubble.FallSpeed))
	}
	if c.Bubble.SpawnRate < 0 || c.Bubble.SpawnRate > 1 {
		errs = append(errs, fmt.Errorf("bubble spawn_rate must be within [0, 1], got %v", c.Bubble.SpawnRate))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("loop tick_rate must be positive, got %d", c.Loop.TickRate))
	}
	return errs
}

func joinInvalid(errs []error) error {
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ValidateLevels checks a level table: at least one level, each using
// between 1 and core.MaxColors colors.
func ValidateLevels(levels []int) error {
	if len(levels) == 0 {
		return errors.New("levels must not be empty")
	}
	for i, n := range levels {
		if n < 1 || n > core.MaxColors {
			return fmt.Errorf("level %d uses %d colors, want 1..%d", i+1, n, core.MaxColors)
		}
	}
	return nil
}
