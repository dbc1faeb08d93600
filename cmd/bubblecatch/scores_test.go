package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/bubble-catch/internal/storage"
)

func openScoresStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.RunRecord{
		{Mode: "classic", Outcome: storage.OutcomeGameOver, Level: 2, Levels: 5, Score: 4},
		{Mode: "quick", Outcome: storage.OutcomeWon, Level: 2, Levels: 2, Score: 5},
		{Mode: "classic", Outcome: storage.OutcomeGameOver, Level: 3, Levels: 5, Score: 9},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestPrintRecentNewestFirst(t *testing.T) {
	store := openScoresStore(t)

	var out bytes.Buffer
	if err := printRecent(&out, store, 2); err != nil {
		t.Fatalf("printRecent() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	rows := lines[len(lines)-2:]
	if !strings.Contains(rows[0], "classic") || !strings.Contains(rows[0], "3/5") {
		t.Errorf("First row should be the latest classic run, got %q", rows[0])
	}
	if !strings.Contains(rows[1], "quick") || !strings.Contains(rows[1], "won") {
		t.Errorf("Second row should be the won quick run, got %q", rows[1])
	}
	if strings.Contains(out.String(), "2/5") {
		t.Errorf("Limit 2 should leave out the oldest run:\n%s", out.String())
	}
}

func TestClearRunsOnlyTouchesMode(t *testing.T) {
	store := openScoresStore(t)

	var out bytes.Buffer
	if err := clearRuns(&out, store, "classic"); err != nil {
		t.Fatalf("clearRuns() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Cleared 2 runs") {
		t.Errorf("Expected the cleared count, got %q", out.String())
	}

	out.Reset()
	if err := printBest(&out, store, "classic", 10); err != nil {
		t.Fatalf("printBest() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No runs recorded yet.") {
		t.Errorf("Classic history should be empty:\n%s", out.String())
	}

	out.Reset()
	if err := printBest(&out, store, "quick", 10); err != nil {
		t.Fatalf("printBest() failed: %v", err)
	}
	if !strings.Contains(out.String(), "Wins: 1") {
		t.Errorf("Quick history should be kept:\n%s", out.String())
	}
}
