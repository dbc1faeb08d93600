// Package core provides fundamental types and utilities for the bubble-catch
// game. It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

import (
	"cmp"
	"math"
)

// Point is a 2D coordinate in field units (not screen cells).
type Point struct {
	X, Y float64
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is a width/height extent in field units.
type Size struct {
	Width, Height float64
}

// Rect represents an axis-aligned box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// RectAt builds a rectangle from a top-left anchor and a size.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.Width, H: s.Height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// CircleIntersectsRect reports whether a circle overlaps an axis-aligned rectangle.
//
// The circle center is compared to the rectangle center on each axis. Beyond
// half extent + radius on either axis there is no overlap; within the half
// extent on either axis the center sits in the rectangle's cross and overlaps.
// Otherwise the nearest corner decides. Touching counts as overlapping.
// Degenerate rectangles and negative radii never overlap.
func CircleIntersectsRect(center Point, radius float64, r Rect) bool {
	if r.Empty() || radius < 0 {
		return false
	}

	halfW := r.W / 2
	halfH := r.H / 2
	c := r.Center()
	dx := math.Abs(center.X - c.X)
	dy := math.Abs(center.Y - c.Y)

	if dx > halfW+radius || dy > halfH+radius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}

	cornerX := dx - halfW
	cornerY := dy - halfH
	return cornerX*cornerX+cornerY*cornerY <= radius*radius
}

// Clamp limits v to [lo, hi]. When lo > hi the result is lo.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(min(v, hi), lo)
}
