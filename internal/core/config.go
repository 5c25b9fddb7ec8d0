package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size; the tick rate is the nominal
// frame rate of the driver, while each Step receives the measured delta.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Driver ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FixedDelta returns the nominal elapsed seconds of one tick at the configured rate.
func (c RuntimeConfig) FixedDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Health   int  // Remaining player health
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended with every enemy destroyed
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
