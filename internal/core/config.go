package core

// RuntimeConfig contains platform settings passed to the game at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Host ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the snapshot the platform polls after each tick.
type GameState struct {
	Score    int    // Player 1 score
	Level    int    // Current level number (1-based)
	Phase    string // Session phase name
	Finished bool   // The current run reached the finish line
	Paused   bool   // Simulation is frozen
}
