// Package breakout implements a single-paddle ball-and-brick game: a fixed
// tick simulation with position-delta brick collisions and a round state
// machine, plus the registry adapter the frontends drive.
package breakout

import "math"

// BrickGrid is a row-major array of brick cells. A cell is alive or
// destroyed. The live counter is maintained on every mutation rather than
// recomputed.
type BrickGrid struct {
	cols, rows int
	offset     int // Top rows left empty by Reset
	cellW      float64
	cellH      float64
	alive      []bool
	left       int
}

// NewBrickGrid creates an empty grid. Call Reset to populate it.
func NewBrickGrid(cols, rows, offset int, cellW, cellH float64) *BrickGrid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &BrickGrid{
		cols:   cols,
		rows:   rows,
		offset: offset,
		cellW:  cellW,
		cellH:  cellH,
		alive:  make([]bool, cols*rows),
	}
}

// Reset clears the first offset rows and sets every other cell alive.
func (g *BrickGrid) Reset() {
	g.left = 0
	for row := range g.rows {
		on := row >= g.offset
		for col := range g.cols {
			g.alive[row*g.cols+col] = on
			if on {
				g.left++
			}
		}
	}
}

// Cols returns the number of columns.
func (g *BrickGrid) Cols() int { return g.cols }

// Rows returns the number of rows.
func (g *BrickGrid) Rows() int { return g.rows }

// CellSize returns the brick dimensions in surface units.
func (g *BrickGrid) CellSize() (w, h float64) { return g.cellW, g.cellH }

// CellAt maps a surface position to the cell containing it.
// The result may lie outside the grid.
func (g *BrickGrid) CellAt(x, y float64) (col, row int) {
	return int(math.Floor(x / g.cellW)), int(math.Floor(y / g.cellH))
}

// InBounds reports whether (col, row) addresses a cell of the grid.
func (g *BrickGrid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// Alive reports whether the cell holds a brick. Out of bounds is never alive.
func (g *BrickGrid) Alive(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.alive[row*g.cols+col]
}

// Destroy removes the brick at (col, row) and reports whether one was there.
func (g *BrickGrid) Destroy(col, row int) bool {
	if !g.Alive(col, row) {
		return false
	}
	g.alive[row*g.cols+col] = false
	g.left--
	return true
}

// BricksLeft returns the maintained live counter.
func (g *BrickGrid) BricksLeft() int {
	return g.left
}

// LiveCount counts alive cells by scanning the grid.
func (g *BrickGrid) LiveCount() int {
	n := 0
	for _, a := range g.alive {
		if a {
			n++
		}
	}
	return n
}

// Cells returns a copy of the row-major alive array.
func (g *BrickGrid) Cells() []bool {
	out := make([]bool, len(g.alive))
	copy(out, g.alive)
	return out
}

// restore overwrites the cells and recounts. Used when applying snapshots.
func (g *BrickGrid) restore(cells []bool) bool {
	if len(cells) != len(g.alive) {
		return false
	}
	copy(g.alive, cells)
	g.left = g.LiveCount()
	return true
}
