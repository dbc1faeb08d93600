package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bubble-catch/internal/core"
	"github.com/vovakirdan/bubble-catch/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return mm
}

func TestMenuCursorStaysOnItems(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m = menuUpdate(t, m, up)
	if m.cursor != 0 {
		t.Errorf("Up on the first item moved the cursor to %d", m.cursor)
	}

	for i, n := 0, len(m.items)+3; i < n; i++ {
		m = menuUpdate(t, m, down)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("Cursor = %d, expected it to stop on the last item %d", m.cursor, len(m.items)-1)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if sel := m.Selected(); sel == nil || sel.GameID != m.items[len(m.items)-1].GameID {
		t.Errorf("Selected() = %+v, expected the last item", sel)
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.RunRecord{Mode: "fake_b", Outcome: storage.OutcomeGameOver, Level: 1, Levels: 2, Score: 7}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig())
	for _, item := range m.items {
		want := 0
		if item.GameID == "fake_b" {
			want = 7
		}
		if item.BestScore != want {
			t.Errorf("BestScore of %s = %d, expected %d", item.GameID, item.BestScore, want)
		}
	}
}
