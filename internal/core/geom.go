// Package core provides the geometry, input and screen primitives shared by the
// simulation packages and the front ends. It has no third-party dependencies so
// the simulation stays pure and testable.
package core

// Rect is an integer rectangle in screen cells, used by renderers.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned box in playfield units (pixels of the simulated surface).
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// OverlapsX reports whether the horizontal spans of b and o overlap.
// Touching edges do not count as overlap.
func (b Box) OverlapsX(o Box) bool {
	return b.Right() > o.X && b.X < o.Right()
}

// ToCells projects b onto a grid of cellW x cellH cells. The result covers every
// cell the box touches and is at least one cell in each dimension.
func (b Box) ToCells(cellW, cellH float64) Rect {
	x0 := floorDiv(b.X, cellW)
	y0 := floorDiv(b.Y, cellH)
	x1 := ceilDiv(b.Right(), cellW)
	y1 := ceilDiv(b.Bottom(), cellH)
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

func floorDiv(v, d float64) int {
	q := int(v / d)
	if float64(q)*d > v {
		q--
	}
	return q
}

func ceilDiv(v, d float64) int {
	q := int(v / d)
	if float64(q)*d < v {
		q++
	}
	return q
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
