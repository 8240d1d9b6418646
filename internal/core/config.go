package core

// RuntimeConfig contains host-level settings handed to the simulation and
// its platform harness. The viewport itself comes from the loaded config.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal hosts only)
	ScreenH  int   // Terminal height in characters (terminal hosts only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only summary of the simulation after a tick.
type GameState struct {
	Score   int   // Current score
	Balls   int   // Number of live balls
	Pointer Point // Last known pointer position
	Running bool  // False once the simulation has stopped
	Ticks   int   // Completed ticks
}
