package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bubble-catch/internal/core"
	"github.com/vovakirdan/bubble-catch/internal/registry"
	"github.com/vovakirdan/bubble-catch/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model for a game on screen. The game runs on
// its own; the model forwards keys as commands and redraws on every tick.
type GameModel struct {
	game        registry.Game
	store       *storage.Store
	logger      *log.Logger
	screen      *core.Screen
	config      core.RuntimeConfig
	keys        GameKeyMap
	help        help.Model
	ticks       <-chan struct{}
	unsubscribe func()
	snapshot    core.Snapshot
	saved       bool // Whether the finished run has been recorded
	exitOnBack  bool // Leaving the game screen ends the program
	quitting    bool
	backToMenu  bool
}

// NewGameModel creates a game model and subscribes it to the game's ticks.
// store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ticks, unsubscribe := game.Subscribe()

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:        game,
		store:       store,
		logger:      logger,
		screen:      core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Last row is the help bar
		config:      cfg,
		keys:        DefaultGameKeyMap(),
		help:        h,
		ticks:       ticks,
		unsubscribe: unsubscribe,
		snapshot:    game.Snapshot(),
	}
}

// Init starts listening for ticks.
func (m GameModel) Init() tea.Cmd {
	return waitForTick(m.ticks)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.refresh()
		return m, waitForTick(m.ticks)
	}
	return m, nil
}

// handleKey forwards a key to the game according to its state.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	intent := Dispatch(m.game.Snapshot().State, m.keys.MapKey(msg), m.game)
	m.refresh()

	switch intent {
	case IntentQuit:
		m.close()
		m.quitting = true
		return m, tea.Quit
	case IntentBack:
		m.close()
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
	}
	return m, nil
}

// refresh takes a new snapshot and records the run once it has finished.
func (m *GameModel) refresh() {
	m.snapshot = m.game.Snapshot()

	if !m.snapshot.State.Finished() {
		m.saved = false
		return
	}
	if m.saved {
		return
	}
	m.saved = true
	m.saveRun()
}

// saveRun stores the finished run. Failure is logged and otherwise ignored.
func (m GameModel) saveRun() {
	if m.store == nil {
		return
	}

	outcome := storage.OutcomeGameOver
	if m.snapshot.State == core.StateWon {
		outcome = storage.OutcomeWon
	}

	_, err := m.store.SaveRun(storage.RunRecord{
		Mode:    m.game.ID(),
		Outcome: outcome,
		Level:   m.snapshot.Level + 1,
		Levels:  len(m.snapshot.Levels),
		Score:   m.snapshot.Score,
		Ticks:   m.snapshot.Tick,
	})
	if err != nil {
		m.logger.Warn("could not save run", "mode", m.game.ID(), "error", err)
	}
}

// close abandons the run and stops listening for ticks.
func (m GameModel) close() {
	m.game.Stop()
	m.unsubscribe()
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.game.Title(), m.snapshot)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user leaves it.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.exitOnBack = true
	defer model.close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
