package bubblecatch

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-catch/internal/config"
	"github.com/vovakirdan/bubble-catch/internal/core"
	"github.com/vovakirdan/bubble-catch/internal/registry"
)

// Mode is a named level table.
type Mode struct {
	ID     string
	Title  string
	Levels Levels // nil means the configured levels
}

// Modes lists the registered game modes.
var Modes = []Mode{
	{ID: "classic", Title: "Bubble Catch"},
	{ID: "quick", Title: "Bubble Catch (Quick)", Levels: Levels{2, 3}},
	{ID: "marathon", Title: "Bubble Catch (Marathon)", Levels: Levels{2, 3, 4, 5, 6, 7, 8}},
}

// Package-level settings applied to every game created by the registry.
var (
	configPath string
	logger     *log.Logger
)

// SetConfigPath sets the config file path used by registry factories.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to games created by registry factories.
func SetLogger(l *log.Logger) {
	logger = l
}

// NewMode creates a game for a mode with the given runtime settings.
func NewMode(m Mode, cfg config.Config, rt core.RuntimeConfig) (*Game, error) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []Option{
		WithIdentity(m.ID, m.Title),
		WithSeed(seed),
		WithTickRate(rt.TickRate),
		WithLogger(logger),
	}
	if m.Levels != nil {
		opts = append(opts, WithLevels(m.Levels))
	}
	return New(cfg, opts...)
}

// Ensure Game implements registry.Game
var _ registry.Game = (*Game)(nil)

func init() {
	for _, m := range Modes {
		registry.Register(m.ID, m.Title, func(rt core.RuntimeConfig) (registry.Game, error) {
			cfg, err := config.Load(configPath)
			if err != nil {
				return nil, err
			}
			g, err := NewMode(m, cfg, rt)
			if err != nil {
				return nil, err
			}
			return g, nil
		})
	}
}
