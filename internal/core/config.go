package core

// RuntimeConfig contains configuration passed to games at initialization.
// The platform uses the screen size to map the world onto cells.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the platform (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Level    int  // Zero-based level index
	GameOver bool // Whether the game has ended (lost or final win)
	Won      bool // Whether the current level was cleared
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and everything that happened during the tick.
type StepResult struct {
	State  GameState
	Events []Event
	Cues   []Cue

	// Err is set when the tick could not be simulated. The round is over.
	Err error
}
