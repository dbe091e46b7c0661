// Package core provides fundamental types and utilities for the racer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in playfield pixels.
// Width and height are fixed once an entity is created; only X and Y move.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rectangles intersect.
// Bounds are inclusive: rectangles that only share an edge overlap.
func Overlaps(a, b Rect) bool {
	return !(a.Right() < b.X || a.X > b.Right() || a.Bottom() < b.Y || a.Y > b.Bottom())
}

// Overlaps is the method form of Overlaps.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

// ClampTo moves r so that it lies inside a bounds-sized area anchored at the
// origin: X in [0, boundsW-W] and Y in [0, boundsH-H]. A rect wider or taller
// than the bounds is pinned to 0 on that axis.
func (r Rect) ClampTo(boundsW, boundsH float64) Rect {
	r.X = ClampF(r.X, 0, math.Max(0, boundsW-r.W))
	r.Y = ClampF(r.Y, 0, math.Max(0, boundsH-r.H))
	return r
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
