package core

import "time"

// RuntimeConfig is what the host tells the game when it (re)starts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host frames per second
	Seed     int64 // Seed for any randomised presentation; 0 picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDuration returns the time one host frame covers. Non-positive
// rates fall back to the default rate.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the status the host polls after every frame.
type GameState struct {
	Score   int  // Points collected so far
	Cleared bool // Nothing left to collect
	Paused  bool // Movement ticks are suspended
}

// StepResult is returned by Game.Step() after each host frame.
type StepResult struct {
	State  GameState
	Ticked bool // An engine tick ran during the frame
}
