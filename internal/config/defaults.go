package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the embedded
// defaults/breakout.yaml and is the base every loaded file is merged onto.
func DefaultConfig() Config {
	return Config{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
		},
		Bricks: BricksConfig{
			Width:           80,
			Height:          20,
			Rows:            14,
			ResetOffsetRows: 3,
			Color:           "red",
		},
		Ball: BallConfig{
			Radius: 10,
			SpeedX: 3,
			SpeedY: 5,
			Color:  "blue",
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       10,
			BottomOffset: 50,
			KeyStep:      20,
			Color:        "green",
		},
		Physics: PhysicsConfig{
			Steering: 0.25,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
