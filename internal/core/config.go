package core

// RuntimeConfig is handed to a game on Reset.
// Games use it to lay out the board and to seed their random source.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// MsToTicks converts a duration in milliseconds to simulation ticks,
// rounding up so that a non-zero duration lasts at least one tick.
func (c RuntimeConfig) MsToTicks(ms int) int {
	if ms <= 0 {
		return 0
	}
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return (ms*rate + 999) / 1000
}

// GameState is what a game reports to the platform after each step.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best known score for this mode
	Moves     int  // Accepted swaps so far
	BestChain int  // Longest cascade chain this game
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
	Busy      bool // A cascade is playing out; input is ignored
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
