package core

// BubbleView is a read-only copy of a falling bubble.
type BubbleView struct {
	Location Point
	Radius   float64
	Color    int
}

// PlayerView is a read-only copy of the paddle. Location is the top-left corner.
type PlayerView struct {
	Location Point
	Size     Size
}

// Rect returns the paddle's collision rectangle.
func (p PlayerView) Rect() Rect {
	return RectAt(p.Location, p.Size)
}

// Snapshot captures everything a renderer needs to draw a frame.
// All slices are copies; mutating them has no effect on the game.
type Snapshot struct {
	Tick         uint64
	State        State
	Field        Size
	Level        int   // Current level (0-indexed)
	Levels       []int // Colors per level, also catches required per level
	CurrentColor int   // Color index that must be caught next
	Caught       int   // Correct catches in the current level
	Score        int   // Correct catches in the whole run
	Player       PlayerView
	Bubbles      []BubbleView
}

// LevelColors returns the number of colors active on the current level.
func (s Snapshot) LevelColors() int {
	if s.Level < 0 || s.Level >= len(s.Levels) {
		return 0
	}
	return s.Levels[s.Level]
}

// LevelsCleared returns how many levels have been completed.
func (s Snapshot) LevelsCleared() int {
	if s.State == StateWon {
		return len(s.Levels)
	}
	return s.Level
}
