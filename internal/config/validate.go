package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Validate checks the physical preconditions the simulation relies on.
// All violations are reported together; any violation is fatal at startup.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		fail("surface must be positive, got %vx%v", c.Surface.Width, c.Surface.Height)
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		fail("brick size must be positive, got %vx%v", c.Bricks.Width, c.Bricks.Height)
	}
	if c.Ball.Radius <= 0 {
		fail("ball radius must be positive, got %v", c.Ball.Radius)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		fail("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Physics.Steering <= 0 {
		fail("steering must be positive, got %v", c.Physics.Steering)
	}
	if c.Runtime.TickRate <= 0 {
		fail("tick rate must be positive, got %d", c.Runtime.TickRate)
	}
	if c.Paddle.KeyStep < 0 {
		fail("paddle key step must not be negative, got %v", c.Paddle.KeyStep)
	}
	if len(errs) > 0 {
		// Derived checks below divide by these values.
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}

	if math.Mod(c.Surface.Width, c.Bricks.Width) != 0 {
		fail("brick width %v does not tile surface width %v", c.Bricks.Width, c.Surface.Width)
	}
	if c.Bricks.Rows < 0 {
		fail("brick rows must not be negative, got %d", c.Bricks.Rows)
	}
	if c.Bricks.ResetOffsetRows < 0 || c.Bricks.ResetOffsetRows > c.Bricks.Rows {
		fail("reset offset rows %d outside [0, %d]", c.Bricks.ResetOffsetRows, c.Bricks.Rows)
	}
	if c.Ball.Radius > math.Min(c.Bricks.Width, c.Bricks.Height) {
		fail("ball radius %v larger than a brick cell %vx%v", c.Ball.Radius, c.Bricks.Width, c.Bricks.Height)
	}
	if 2*c.Ball.Radius >= math.Min(c.Surface.Width, c.Surface.Height) {
		fail("ball diameter %v does not fit the surface", 2*c.Ball.Radius)
	}
	if c.Paddle.Width > c.Surface.Width {
		fail("paddle width %v wider than surface %v", c.Paddle.Width, c.Surface.Width)
	}
	paddleY := c.PaddleY()
	if paddleY <= 0 || paddleY+c.Paddle.Height > c.Surface.Height {
		fail("paddle at y=%v does not fit the surface", paddleY)
	}
	if brickArea := float64(c.Bricks.Rows) * c.Bricks.Height; brickArea >= paddleY {
		fail("brick area ends at y=%v, at or below the paddle at y=%v", brickArea, paddleY)
	}

	// Position-delta collision inference cannot see a cell that the ball
	// skips in a single tick.
	if math.Abs(c.Ball.SpeedY) >= c.Bricks.Height {
		fail("vertical speed %v reaches brick height %v per tick", c.Ball.SpeedY, c.Bricks.Height)
	}
	maxSteer := (c.Paddle.Width/2 + c.Ball.Radius) * c.Physics.Steering
	if vx := math.Max(math.Abs(c.Ball.SpeedX), maxSteer); vx >= c.Bricks.Width {
		fail("horizontal speed %v reaches brick width %v per tick", vx, c.Bricks.Width)
	}

	for field, name := range map[string]string{
		"bricks.color": c.Bricks.Color,
		"ball.color":   c.Ball.Color,
		"paddle.color": c.Paddle.Color,
	} {
		if _, ok := core.ParseColor(name); !ok {
			fail("%s: unknown color %q", field, name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
