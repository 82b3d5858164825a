package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball represents the ball state in surface units.
// Radius is constant for a run; velocity components only ever change sign,
// except when the paddle overwrites VX.
type Ball struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity per tick
	Radius float64
	Color  core.Color
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle represents the player's paddle.
// Position is owned by the input side; the simulation never clamps it.
type Paddle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Color         core.Color
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Right returns the right edge of the paddle.
func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// Surface is the playing field. The origin is the top-left corner and Y grows
// downward.
type Surface struct {
	Width, Height float64
}

// Advance moves the ball one tick and applies boundary handling in order:
// floor, side walls, ceiling. Floor contact re-centers the ball and resets
// the grid without touching velocity. Walls and ceiling reflect only while
// the ball is still moving into them.
func Advance(s *Session) {
	b := &s.ball
	b.Move()

	if b.Y > s.surface.Height-b.Radius {
		hitX, hitY := b.X, b.Y
		s.resetBall()
		s.grid.Reset()
		s.stats.FloorResets++
		s.emit(Event{Kind: EventFloorReset, X: hitX, Y: hitY})
	}

	if (b.X > s.surface.Width-b.Radius && b.VX > 0) || (b.X < b.Radius && b.VX < 0) {
		b.BounceX()
		s.emit(Event{Kind: EventWallBounce, X: b.X, Y: b.Y})
	}

	if b.Y < b.Radius && b.VY < 0 {
		b.BounceY()
		s.emit(Event{Kind: EventCeilingBounce, X: b.X, Y: b.Y})
	}
}

// ResolvePaddle reflects the ball off the paddle when it sits in the band
// just above the paddle's top edge. The new horizontal velocity depends only
// on the offset from the paddle center. An empty grid is refilled on contact.
func ResolvePaddle(s *Session) {
	b := &s.ball
	p := s.paddle

	if !(p.Y-b.Radius < b.Y && b.Y < p.Y) {
		return
	}
	if !(p.X-b.Radius < b.X && b.X < p.Right()) {
		return
	}

	b.BounceY()
	b.VX = (p.CenterX() - b.X) * s.steering
	s.stats.PaddleHits++
	s.emit(Event{Kind: EventPaddleHit, X: b.X, Y: b.Y})

	if s.grid.BricksLeft() == 0 {
		s.grid.Reset()
		if s.grid.BricksLeft() == 0 {
			return // brickless layout
		}
		s.stats.RoundsCleared++
		s.emit(Event{Kind: EventRoundReset, X: b.X, Y: b.Y})
	}
}
