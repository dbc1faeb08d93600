package core

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateInitialized, "initialized"},
		{StateStarted, "started"},
		{StateGameOver, "game_over"},
		{StateWon, "won"},
		{State(42), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("State(%d).String() = %q, expected %q", int(tc.state), got, tc.expected)
		}
	}
}

func TestStateValidFinished(t *testing.T) {
	if !StateWon.Valid() || State(-1).Valid() || State(4).Valid() {
		t.Error("Valid() should accept exactly the four defined states")
	}
	if StateStarted.Finished() || StateInitialized.Finished() {
		t.Error("Initialized and Started are not finished")
	}
	if !StateGameOver.Finished() || !StateWon.Finished() {
		t.Error("GameOver and Won are finished")
	}
}

func TestSnapshotLevelHelpers(t *testing.T) {
	snap := Snapshot{State: StateStarted, Level: 1, Levels: []int{2, 3}}
	if snap.LevelColors() != 3 {
		t.Errorf("LevelColors() = %d, expected 3", snap.LevelColors())
	}
	if snap.LevelsCleared() != 1 {
		t.Errorf("LevelsCleared() = %d, expected 1", snap.LevelsCleared())
	}

	snap.State = StateWon
	if snap.LevelsCleared() != 2 {
		t.Errorf("LevelsCleared() when won = %d, expected 2", snap.LevelsCleared())
	}

	snap.Level = 5
	if snap.LevelColors() != 0 {
		t.Errorf("LevelColors() out of range = %d, expected 0", snap.LevelColors())
	}
}

func TestBubbleColor(t *testing.T) {
	seen := make(map[Color]bool)
	for i := 0; i < MaxColors; i++ {
		c := BubbleColor(i)
		if seen[c] {
			t.Errorf("BubbleColor(%d) = %d duplicates an earlier color", i, c)
		}
		seen[c] = true
		if BubbleColorName(i) == "unknown" {
			t.Errorf("BubbleColorName(%d) should be named", i)
		}
	}
	if BubbleColor(MaxColors) != ColorGray || BubbleColor(-1) != ColorGray {
		t.Error("Out of range bubble colors should render gray")
	}
}
