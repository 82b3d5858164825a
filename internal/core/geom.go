// Package core provides fundamental types and utilities shared by the game
// and its frontends. It has no external dependencies (especially no Bubble
// Tea or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Projection maps surface coordinates (the simulation's real-valued units)
// onto a grid of screen cells.
type Projection struct {
	SurfaceW, SurfaceH float64
	CellsW, CellsH     int
}

// CellX returns the column containing surface coordinate x.
func (p Projection) CellX(x float64) int {
	if p.SurfaceW <= 0 {
		return 0
	}
	return int(math.Floor(x * float64(p.CellsW) / p.SurfaceW))
}

// CellY returns the row containing surface coordinate y.
func (p Projection) CellY(y float64) int {
	if p.SurfaceH <= 0 {
		return 0
	}
	return int(math.Floor(y * float64(p.CellsH) / p.SurfaceH))
}

// SurfaceX returns the surface x at the horizontal center of column cx.
func (p Projection) SurfaceX(cx int) float64 {
	if p.CellsW <= 0 {
		return 0
	}
	return (float64(cx) + 0.5) * p.SurfaceW / float64(p.CellsW)
}

// Rect projects a surface-space box onto cells. The result is at least one
// cell wide and tall so small objects stay visible.
func (p Projection) Rect(x, y, w, h float64) Rect {
	x0, y0 := p.CellX(x), p.CellY(y)
	x1, y1 := p.CellX(x+w), p.CellY(y+h)
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
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
