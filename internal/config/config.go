// Package config provides YAML-based game configuration loading, variant
// presets and startup validation.
package config

// Config contains every constant the simulation consumes at initialization.
// Lengths are in surface units, speeds in surface units per tick.
type Config struct {
	Surface SurfaceConfig `yaml:"surface"`
	Bricks  BricksConfig  `yaml:"bricks"`
	Ball    BallConfig    `yaml:"ball"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Physics PhysicsConfig `yaml:"physics"`
	Runtime RuntimeConfig `yaml:"runtime"`
}

// SurfaceConfig defines the drawing surface dimensions.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Rows            int     `yaml:"rows"`
	ResetOffsetRows int     `yaml:"reset_offset_rows"` // Top rows left empty on every reset
	Color           string  `yaml:"color"`
}

// BallConfig defines the ball size and launch velocity.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
	Color  string  `yaml:"color"`
}

// PaddleConfig defines the paddle geometry.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from paddle top to the floor
	KeyStep      float64 `yaml:"key_step"`      // Keyboard nudge per tick
	Color        string  `yaml:"color"`
}

// PhysicsConfig defines collision response tuning.
type PhysicsConfig struct {
	Steering float64 `yaml:"steering"` // Paddle offset to horizontal velocity factor
}

// RuntimeConfig defines the logical scheduler.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate"` // Fixed logical ticks per second
}

// Columns returns the number of brick columns that fit across the surface.
func (c Config) Columns() int {
	if c.Bricks.Width <= 0 {
		return 0
	}
	return int(c.Surface.Width / c.Bricks.Width)
}

// PaddleY returns the top edge of the paddle.
func (c Config) PaddleY() float64 {
	return c.Surface.Height - c.Paddle.BottomOffset
}

// InitialBricks returns how many bricks are alive right after a reset.
func (c Config) InitialBricks() int {
	rows := c.Bricks.Rows - c.Bricks.ResetOffsetRows
	if rows < 0 {
		rows = 0
	}
	return rows * c.Columns()
}
