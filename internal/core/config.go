package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed, 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score     int
	GameOver  bool
	Paused    bool
	BestCombo int   // Highest combo multiplier reached
	MovesUsed int   // Moves spent so far
	Seed      int64 // Seed the current board was generated from
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
