package bubblecatch

import (
	"slices"

	"github.com/vovakirdan/bubble-catch/internal/core"
)

// Step advances the simulation by one tick if a run is active and notifies
// subscribers. Returns true while the run is still going.
func (g *Game) Step() bool {
	g.mu.Lock()
	gen := g.gen
	g.mu.Unlock()

	_, running := g.advance(gen)
	return running
}

// advance runs one tick for loop generation gen. A stale generation or a
// state other than Started makes it a no-op. Subscribers are notified after
// every executed tick, including the one that ends the run.
func (g *Game) advance(gen uint64) (executed, running bool) {
	g.mu.Lock()
	if g.gen != gen || g.state != core.StateStarted {
		g.mu.Unlock()
		return false, false
	}
	g.tickLocked()
	running = g.state == core.StateStarted
	g.mu.Unlock()

	g.notify()
	return true, running
}

// tickLocked performs one simulation tick. Caller must hold g.mu.
//
// Bubbles are walked from last to first so removal keeps the remaining
// indexes valid. A catch that clears a level or a wrong catch ends the tick
// before anything else moves or spawns.
func (g *Game) tickLocked() {
	g.tick++

	for i := len(g.bubbles) - 1; i >= 0; i-- {
		b := &g.bubbles[i]

		if b.Intersects(g.player) {
			if b.Color != g.currentColor {
				g.endRun(core.StateGameOver)
				return
			}
			g.caught++
			g.score++
			g.bubbles = slices.Delete(g.bubbles, i, i+1)
			if g.checkNextLevel() {
				return
			}
			continue
		}

		b.Location = b.Location.Add(0, g.cfg.Bubble.FallSpeed)
		if b.Location.Y-b.Radius > g.cfg.Field.Height {
			g.bubbles = slices.Delete(g.bubbles, i, i+1)
		}
	}

	g.spawnBubble()
}

// checkNextLevel applies progression after a correct catch. Below the
// requirement the next color becomes the required one. At the requirement
// the field is cleared and the next level begins, or the run is won if this
// was the final level. Returns true when the level was completed.
func (g *Game) checkNextLevel() bool {
	if g.caught < g.levels.Colors(g.level) {
		g.currentColor++
		return false
	}

	if g.levels.IsLast(g.level) {
		g.endRun(core.StateWon)
		return true
	}

	g.bubbles = g.bubbles[:0]
	g.level++
	g.caught = 0
	g.currentColor = 0
	g.logger.Debug("level cleared", "mode", g.id, "level", g.level, "colors", g.levels.Colors(g.level))
	return true
}

// endRun moves to a terminal state and drops the remaining bubbles.
// The loop goroutine notices the state change and exits.
func (g *Game) endRun(state core.State) {
	g.state = state
	g.bubbles = g.bubbles[:0]
	if state == core.StateWon {
		g.caught = 0
		g.currentColor = 0
	}
	g.logger.Info("run ended",
		"mode", g.id,
		"state", state,
		"level", g.level+1,
		"levels", g.levels.Len(),
		"score", g.score,
		"max_score", g.levels.Total(),
		"ticks", g.tick,
	)
}

// spawnBubble adds one bubble at the top of the field with probability
// SpawnRate, at a uniform horizontal position and in a uniform color of the
// current level.
func (g *Game) spawnBubble() {
	if g.rng.Float64() >= g.cfg.Bubble.SpawnRate {
		return
	}

	g.bubbles = append(g.bubbles, Bubble{
		Location: core.Point{X: g.rng.Float64() * g.cfg.Field.Width, Y: 0},
		Radius:   g.cfg.Bubble.Radius,
		Color:    g.rng.Intn(g.levels.Colors(g.level)),
	})
}
