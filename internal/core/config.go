package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Screen dimensions describe the frontend; the play area itself comes from
// the game configuration and does not depend on the terminal or window.
type RuntimeConfig struct {
	ScreenW  int   // Frontend width (terminal columns)
	ScreenH  int   // Frontend height (terminal rows)
	TickRate int   // Simulation ticks per second (default 50)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome is the state of the game loop state machine.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeLoss
	OutcomeWin
)

// String returns the outcome name as stored with scores.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeLoss:
		return "loss"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the loop must exit.
func (o Outcome) Terminal() bool {
	return o == OutcomeLoss || o == OutcomeWin
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int     // Current score
	GameOver bool    // Whether the game has ended
	Paused   bool    // Whether the game is paused
	Outcome  Outcome // Running, or the terminal outcome
	Frame    int     // Frames simulated so far
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Hold is the real-time delay the driver must wait on the frame that
	// reached a terminal outcome, with the banner on display. Zero otherwise.
	Hold time.Duration
}
