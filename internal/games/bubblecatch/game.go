// Package bubblecatch implements the bubble catching game.
// Bubbles of several colors fall down the field; the player moves a paddle
// and must catch them in the required color order. A wrong color ends the run.
package bubblecatch

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-catch/internal/config"
	"github.com/vovakirdan/bubble-catch/internal/core"
)

// Game owns the simulation: the paddle, the bubbles, the level counters and
// the state machine. All commands are safe for concurrent use; commands,
// ticks and snapshots are mutually exclusive.
type Game struct {
	id    string
	title string

	cfg        config.Config
	levels     Levels
	tickPeriod time.Duration
	manual     bool // No loop goroutine; the caller drives Step
	logger     *log.Logger

	mu           sync.Mutex
	rng          *rand.Rand
	state        core.State
	player       Player
	bubbles      []Bubble
	level        int // Current level (0-indexed)
	currentColor int // Color that must be caught next
	caught       int // Correct catches in the current level
	score        int // Correct catches in the whole run
	tick         uint64
	gen          uint64        // Loop generation; bumped whenever a run is started or halted
	stop         chan struct{} // Closed to wake the current loop on halt

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

// Option customizes a Game at construction.
type Option func(*Game)

// WithSeed seeds the bubble spawner.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLevels replaces the configured level table.
func WithLevels(levels Levels) Option {
	return func(g *Game) {
		g.levels = levels.Clone()
	}
}

// WithTickRate overrides the configured ticks per second.
func WithTickRate(rate int) Option {
	return func(g *Game) {
		if rate > 0 {
			g.tickPeriod = time.Second / time.Duration(rate)
		}
	}
}

// WithLogger sets the logger for run lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithIdentity sets the ID and title reported to the platform.
func WithIdentity(id, title string) Option {
	return func(g *Game) {
		g.id = id
		g.title = title
	}
}

// withManualStepping disables the loop goroutine. Start only changes state
// and the caller advances the simulation with Step. Used by tests and replays.
func withManualStepping() Option {
	return func(g *Game) {
		g.manual = true
	}
}

// New creates a game in the Initialized state.
func New(cfg config.Config, opts ...Option) (*Game, error) {
	g := &Game{
		id:         "classic",
		title:      "Bubble Catch",
		cfg:        cfg,
		levels:     Levels(slices.Clone(cfg.Levels)),
		tickPeriod: time.Second / time.Duration(max(cfg.Loop.TickRate, 1)),
		logger:     log.New(io.Discard),
		subs:       make(map[int]chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := cfg.ValidateSettings(); err != nil {
		return nil, err
	}
	if err := g.levels.Validate(); err != nil {
		return nil, fmt.Errorf("bubblecatch: %w", err)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g.state = core.StateInitialized
	g.resetField()
	return g, nil
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Levels returns a copy of the level table.
func (g *Game) Levels() Levels {
	return g.levels.Clone()
}

// Start begins a run. No-op unless the game is Initialized.
func (g *Game) Start() {
	g.mu.Lock()
	if g.state != core.StateInitialized {
		g.mu.Unlock()
		return
	}

	g.resetField()
	g.state = core.StateStarted
	gen, stop := g.arm()
	g.mu.Unlock()

	g.logger.Info("run started", "mode", g.id, "levels", len(g.levels))
	if !g.manual {
		go g.loop(gen, stop)
	}
}

// MoveLeft shifts the paddle left by one step while a run is active.
func (g *Game) MoveLeft() {
	g.movePlayer(-g.cfg.Player.MoveStep)
}

// MoveRight shifts the paddle right by one step while a run is active.
func (g *Game) MoveRight() {
	g.movePlayer(g.cfg.Player.MoveStep)
}

// Restart returns a finished game (GameOver or Won) to Initialized.
// No-op in any other state.
func (g *Game) Restart() {
	g.mu.Lock()
	if !g.state.Finished() {
		g.mu.Unlock()
		return
	}
	g.reinitialize()
	g.mu.Unlock()

	g.logger.Debug("run restarted", "mode", g.id)
}

// Stop abandons the current run from any state and returns to Initialized.
// A running loop goroutine exits before it performs another tick.
func (g *Game) Stop() {
	g.mu.Lock()
	wasRunning := g.state == core.StateStarted
	g.reinitialize()
	g.mu.Unlock()

	if wasRunning {
		g.logger.Info("run stopped", "mode", g.id)
	}
}

// State returns the current state tag.
func (g *Game) State() core.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Snapshot returns a copy of everything a renderer needs.
func (g *Game) Snapshot() core.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	bubbles := make([]core.BubbleView, len(g.bubbles))
	for i, b := range g.bubbles {
		bubbles[i] = b.View()
	}

	return core.Snapshot{
		Tick:         g.tick,
		State:        g.state,
		Field:        core.Size{Width: g.cfg.Field.Width, Height: g.cfg.Field.Height},
		Level:        g.level,
		Levels:       slices.Clone(g.levels),
		CurrentColor: g.currentColor,
		Caught:       g.caught,
		Score:        g.score,
		Player:       g.player.View(),
		Bubbles:      bubbles,
	}
}

// Subscribe registers for tick notifications. The channel has room for one
// pending notification; further ticks coalesce until it is drained, so a
// slow subscriber never blocks the simulation. The returned function
// unsubscribes and closes the channel.
func (g *Game) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	g.subMu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = ch
	g.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			g.subMu.Lock()
			delete(g.subs, id)
			close(ch)
			g.subMu.Unlock()
		})
	}
}

// notify signals every subscriber without blocking.
func (g *Game) notify() {
	g.subMu.Lock()
	defer g.subMu.Unlock()

	for _, ch := range g.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// movePlayer shifts the paddle horizontally. The move is rejected entirely
// if the new position would leave [0, field width].
func (g *Game) movePlayer(distance float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != core.StateStarted {
		return
	}
	next := g.player.Location.Add(distance, 0)
	if next.X < 0 || next.X > g.cfg.Field.Width {
		return
	}
	g.player.Location = next
}

// reinitialize halts any loop and restores the pristine Initialized state.
// Caller must hold g.mu.
func (g *Game) reinitialize() {
	g.halt()
	g.state = core.StateInitialized
	g.resetField()
}

// resetField clears bubbles and counters and puts the paddle at its spawn
// position. Caller must hold g.mu (or own g exclusively).
func (g *Game) resetField() {
	g.bubbles = g.bubbles[:0]
	g.player = Player{
		Location: core.Point{
			X: g.cfg.Field.Width/2 - g.cfg.Player.Width/2,
			Y: g.cfg.Field.Height - 2*g.cfg.Player.Height,
		},
		Size: core.Size{Width: g.cfg.Player.Width, Height: g.cfg.Player.Height},
	}
	g.level = 0
	g.currentColor = 0
	g.caught = 0
	g.score = 0
	g.tick = 0
}

// arm starts a new loop generation. Caller must hold g.mu.
func (g *Game) arm() (uint64, <-chan struct{}) {
	g.halt()
	g.stop = make(chan struct{})
	return g.gen, g.stop
}

// halt invalidates the current loop generation and wakes its goroutine.
// Caller must hold g.mu.
func (g *Game) halt() {
	g.gen++
	if g.stop != nil {
		close(g.stop)
		g.stop = nil
	}
}
