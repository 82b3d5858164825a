package breakout

// BrickResolver decides how the ball interacts with the brick grid after the
// ball has moved for the tick.
type BrickResolver interface {
	Resolve(s *Session)
}

// DeltaResolver infers the struck face of a brick from the cell the ball
// occupied before this tick's motion. There is no sub-tick sweep, so a ball
// faster than one cell per tick can tunnel; config validation rejects such
// speeds.
type DeltaResolver struct{}

// Resolve destroys the brick under the ball, if any, and reflects the ball.
//
// A column change flips VX when the horizontally adjacent cell in the current
// row is empty. A row change flips VY when the vertically adjacent cell in
// the current column is empty. A hit without any cell change flips both.
// When both the column and the row changed and both neighbors are alive,
// nothing flips.
func (DeltaResolver) Resolve(s *Session) {
	b := &s.ball
	g := s.grid

	col, row := g.CellAt(b.X, b.Y)
	if !g.Destroy(col, row) {
		return
	}
	s.stats.BricksDestroyed++
	s.emit(Event{Kind: EventBrickDestroyed, Col: col, Row: row, X: b.X, Y: b.Y})

	prevCol, prevRow := g.CellAt(b.X-b.VX, b.Y-b.VY)
	colChanged := prevCol != col
	rowChanged := prevRow != row

	// Both checks read the pre-flip velocity.
	flipX := colChanged && !g.Alive(prevCol, row)
	flipY := rowChanged && !g.Alive(col, prevRow)
	if !colChanged && !rowChanged {
		flipX, flipY = true, true
	}

	if flipX {
		b.BounceX()
	}
	if flipY {
		b.BounceY()
	}
}
