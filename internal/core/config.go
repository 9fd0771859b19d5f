package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to the terminal size and for deterministic
// simulation in tests.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 100)
	Seed     int64 // RNG seed; 0 means time-based in the platform layer
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     0,
	}
}

// GameState is the game status reported to the platform after each tick.
type GameState struct {
	Points   float64 // Fractional score: ticks survived / spawn delay
	Ticks    int     // Ticks survived so far
	GameOver bool    // Whether the session has ended
	Paused   bool    // Whether the game is paused
}
