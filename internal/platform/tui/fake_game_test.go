package tui

import (
	"github.com/vovakirdan/bubble-catch/internal/core"
	"github.com/vovakirdan/bubble-catch/internal/registry"
)

// Modes the menu and scoreboard tests list.
func init() {
	for _, id := range []string{"fake_a", "fake_b", "fake_c"} {
		registry.Register(id, "Fake "+id[len(id)-1:], func(core.RuntimeConfig) (registry.Game, error) {
			return newFakeGame(), nil
		})
	}
}

// fakeGame is a hand-driven game used by the UI tests.
type fakeGame struct {
	snap  core.Snapshot
	calls []string
	ticks chan struct{}
}

func newFakeGame() *fakeGame {
	return &fakeGame{
		snap: core.Snapshot{
			State:  core.StateInitialized,
			Field:  core.Size{Width: 200, Height: 400},
			Levels: []int{2, 3},
			Player: core.PlayerView{
				Location: core.Point{X: 90, Y: 390},
				Size:     core.Size{Width: 20, Height: 5},
			},
		},
		ticks: make(chan struct{}, 1),
	}
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Start() {
	f.calls = append(f.calls, "start")
	if f.snap.State == core.StateInitialized {
		f.snap.State = core.StateStarted
	}
}

func (f *fakeGame) MoveLeft()  { f.calls = append(f.calls, "left") }
func (f *fakeGame) MoveRight() { f.calls = append(f.calls, "right") }

func (f *fakeGame) Restart() {
	f.calls = append(f.calls, "restart")
	if f.snap.State.Finished() {
		f.snap.State = core.StateInitialized
	}
}

func (f *fakeGame) Stop() {
	f.calls = append(f.calls, "stop")
	f.snap.State = core.StateInitialized
}

func (f *fakeGame) Snapshot() core.Snapshot { return f.snap }

func (f *fakeGame) Subscribe() (<-chan struct{}, func()) {
	return f.ticks, func() {}
}
