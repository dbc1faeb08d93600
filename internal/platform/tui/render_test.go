package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bubble-catch/internal/core"
)

func TestDrawGamePanels(t *testing.T) {
	tests := []struct {
		state    core.State
		expected string
	}{
		{core.StateInitialized, "Press any key to start"},
		{core.StateGameOver, "GAME OVER"},
		{core.StateWon, "YOU WIN!"},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			snap := newFakeGame().snap
			snap.State = tc.state

			s := core.NewScreen(80, 24)
			DrawGame(s, "Bubble Catch", snap)

			if !strings.Contains(s.String(), tc.expected) {
				t.Errorf("Screen for %v should contain %q:\n%s", tc.state, tc.expected, s.String())
			}
		})
	}
}

func TestDrawGameStarted(t *testing.T) {
	snap := newFakeGame().snap
	snap.State = core.StateStarted
	snap.Level = 1
	snap.CurrentColor = 1
	snap.Caught = 1
	snap.Score = 3
	snap.Bubbles = []core.BubbleView{
		{Location: core.Point{X: 100, Y: 200}, Radius: 2, Color: 2},
	}

	s := core.NewScreen(80, 24)
	DrawGame(s, "Bubble Catch", snap)
	out := s.String()

	if !strings.Contains(out, "Level 2/2  Score 3") {
		t.Errorf("HUD should show level and score:\n%s", out)
	}
	strip := strings.Split(out, "\n")[1]
	if !strings.Contains(strip, "Catch this:") || !strings.Contains(strip, "1/3  next: green") {
		t.Errorf("Second row should hold the color strip and the next color, got %q", strip)
	}
	if strings.Contains(out, "GAME OVER") || strings.Contains(out, "Press any key") {
		t.Error("No panel should be drawn while a run is active")
	}

	bubbles, paddle := 0, 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			switch {
			case c.Rune == bubbleRune && y > 1:
				bubbles++
				if c.Color != core.BubbleColor(2) {
					t.Errorf("Bubble drawn in %v, expected %v", c.Color, core.BubbleColor(2))
				}
			case c.Rune == paddleRune:
				paddle++
			}
		}
	}
	if bubbles != 1 {
		t.Errorf("Expected 1 bubble on the field, found %d", bubbles)
	}
	if paddle == 0 {
		t.Error("Paddle was not drawn")
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	s := core.NewScreen(20, 6)
	DrawGame(s, "Bubble Catch", newFakeGame().snap)

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("Expected a size warning:\n%s", s.String())
	}
}

func TestDrawGameUnknownStatePanics(t *testing.T) {
	snap := newFakeGame().snap
	snap.State = core.State(42)

	defer func() {
		if recover() == nil {
			t.Error("DrawGame() with an unknown state should panic")
		}
	}()
	DrawGame(core.NewScreen(80, 24), "Bubble Catch", snap)
}

func TestViewportKeepsFieldInside(t *testing.T) {
	field := core.Size{Width: 200, Height: 400}
	v := newViewport(field, 78, 19)

	if v.cols > 78 || v.rows > 19 {
		t.Fatalf("Viewport %dx%d exceeds available 78x19", v.cols, v.rows)
	}
	if c := v.col(field.Width - 0.01); c >= v.cols {
		t.Errorf("Right edge maps to column %d of %d", c, v.cols)
	}
	if r := v.row(field.Height - 0.01); r >= v.rows {
		t.Errorf("Bottom edge maps to row %d of %d", r, v.rows)
	}
}

func TestDrawPaddleOnRightWall(t *testing.T) {
	snap := newFakeGame().snap
	snap.State = core.StateStarted
	snap.Player.Location.X = snap.Field.Width

	s := core.NewScreen(80, 24)
	DrawGame(s, "Bubble Catch", snap)

	view := newViewport(snap.Field, s.Width()-2, s.Height()-hudRows-2)
	fieldLeft := (s.Width()-view.cols-2)/2 + 1
	fieldRight := fieldLeft + view.cols - 1

	paddle := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != paddleRune {
				continue
			}
			paddle++
			if x < fieldLeft || x > fieldRight {
				t.Errorf("Paddle cell at column %d is outside the field [%d, %d]", x, fieldLeft, fieldRight)
			}
		}
	}
	if paddle == 0 {
		t.Error("Paddle on the right wall should still be drawn")
	}
}
