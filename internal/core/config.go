package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their terminal view and for deterministic simulation.
// The simulation itself runs in world units and never sees ScreenW/ScreenH.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Difficulty level derived from the scroll offset
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Event is a notable thing that happened during a tick.
// The platform layer maps events to sounds and log lines.
type Event int

const (
	EventJump Event = iota + 1
	EventLand
	EventLevelUp
	EventGameOver
)

// RunSummary describes a playthrough for score storage.
type RunSummary struct {
	Score int
	Level int
	Ticks int
	Cause string // why the run ended; empty while running
}
