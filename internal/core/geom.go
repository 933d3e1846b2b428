// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clip returns the part of r inside bounds. The result has zero size when
// they do not overlap.
func (r Rect) Clip(bounds Rect) Rect {
	x0, y0 := Max(r.X, bounds.X), Max(r.Y, bounds.Y)
	x1, y1 := Min(r.Right(), bounds.Right()), Min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Box is an axis-aligned rectangle in world units (logical pixels).
// Game actors keep their position in a Box; renderers project it to cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// BoxAt returns a w×h box centered on (cx, cy).
func BoxAt(cx, cy, w, h float64) Box {
	return Box{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Moved returns the box translated by d.
func (b Box) Moved(d Vec) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// CheckBound reports, per axis, whether b lies fully inside a w×h arena
// anchored at the origin. Both results are true for a box that is on screen.
func CheckBound(b Box, w, h float64) (horizontal, vertical bool) {
	horizontal = b.X >= 0 && b.Right() <= w
	vertical = b.Y >= 0 && b.Bottom() <= h
	return horizontal, vertical
}

// InBounds reports whether b lies fully inside the arena on both axes.
func InBounds(b Box, w, h float64) bool {
	horizontal, vertical := CheckBound(b, w, h)
	return horizontal && vertical
}

// Orientation returns the unit vector pointing from the center of org to the
// center of dst. Coincident centers yield straight down.
func Orientation(org, dst Box) Vec {
	from, to := org.Center(), dst.Center()
	d := Vec{X: to.X - from.X, Y: to.Y - from.Y}
	if d.IsZero() {
		return Vec{X: 0, Y: 1}
	}
	return d.Scale(1 / d.Len())
}

// AngleOf returns the heading of v in degrees, counter-clockwise from +X with
// screen Y pointing down (so "up" is +90).
func AngleOf(v Vec) float64 {
	return math.Atan2(-v.Y, v.X) * 180 / math.Pi
}

// Heading returns the unit vector for an angle produced by AngleOf.
func Heading(deg float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{X: math.Cos(rad), Y: -math.Sin(rad)}
}

// RotatedExtent returns the bounding size of a w×h rectangle rotated by deg.
func RotatedExtent(w, h, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	c, s := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	return w*c + h*s, w*s + h*c
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
