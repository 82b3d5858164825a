package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt their rendering to the screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Logical simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing summary of a game after a tick.
type GameState struct {
	Phase      string // Lifecycle phase name ("init", "running", "win", "lose")
	BricksLeft int    // Live bricks in the current round
	Rounds     int    // Rounds cleared so far
	Over       bool   // Whether the game reached a terminal phase
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
