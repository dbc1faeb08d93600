package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-catch/internal/core"
	"github.com/vovakirdan/bubble-catch/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm, cmd
}

func TestGameModelStartsAndStops(t *testing.T) {
	g := newFakeGame()
	m := NewGameModel(g, nil, nil, core.DefaultConfig())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if g.snap.State != core.StateStarted {
		t.Fatalf("Any key should start the game, state = %v", g.snap.State)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if g.snap.State != core.StateInitialized {
		t.Errorf("Esc should stop the run, state = %v", g.snap.State)
	}
	if m.BackToMenu() || m.IsQuitting() {
		t.Error("Stopping a run should stay on the game screen")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc on the start screen should leave the game")
	}
}

func TestGameModelRecordsFinishedRunOnce(t *testing.T) {
	store := openStore(t)
	g := newFakeGame()
	m := NewGameModel(g, store, nil, core.DefaultConfig())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	g.snap.State = core.StateGameOver
	g.snap.Level = 1
	g.snap.Score = 4
	g.snap.Tick = 321
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected the run to be recorded once, got %d", len(runs))
	}
	r := runs[0]
	if r.Outcome != storage.OutcomeGameOver || r.Score != 4 || r.Level != 2 || r.Levels != 2 || r.Ticks != 321 {
		t.Errorf("Recorded run = %+v", r)
	}

	// Play again and win
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	g.snap.State = core.StateWon
	g.snap.Score = 5
	m, _ = update(t, m, TickMsg{})

	best, _ := store.BestScore("fake")
	if best != 5 {
		t.Errorf("Second run should be recorded, best = %d", best)
	}
	if v := m.View(); v == "" {
		t.Error("View() should render the game")
	}
}

func TestGameModelQuit(t *testing.T) {
	g := newFakeGame()
	m := NewGameModel(g, nil, nil, core.DefaultConfig())
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("Ctrl+C should quit")
	}
	if g.snap.State != core.StateInitialized {
		t.Errorf("Quitting should stop the game, state = %v", g.snap.State)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
