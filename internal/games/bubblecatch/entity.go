package bubblecatch

import "github.com/vovakirdan/bubble-catch/internal/core"

// Player is the paddle. Location is its top-left corner; the same anchor is
// used for collision and rendering.
type Player struct {
	Location core.Point
	Size     core.Size
}

// Rect returns the paddle's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.RectAt(p.Location, p.Size)
}

// View returns a read-only copy for the presentation layer.
func (p Player) View() core.PlayerView {
	return core.PlayerView{Location: p.Location, Size: p.Size}
}

// Bubble is a falling circle. Location is its center.
type Bubble struct {
	Location core.Point
	Radius   float64
	Color    int // Index into the level palette
}

// Intersects reports whether the bubble overlaps the paddle.
func (b Bubble) Intersects(p Player) bool {
	return core.CircleIntersectsRect(b.Location, b.Radius, p.Rect())
}

// View returns a read-only copy for the presentation layer.
func (b Bubble) View() core.BubbleView {
	return core.BubbleView{Location: b.Location, Radius: b.Radius, Color: b.Color}
}
