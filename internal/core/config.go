package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to fit the terminal and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Sound    bool  // Whether the platform plays sound cues
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Sound:    true,
	}
}

// TickInterval returns the fixed step duration for the configured rate.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// RunStats are the counters of one finished or running game.
type RunStats struct {
	Intercepts     int
	Shots          int
	Pickups        int
	StructuresLost int
	Duration       time.Duration
}

// Accuracy returns intercepts per shot fired, zero before the first shot.
func (s RunStats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Intercepts) / float64(s.Shots)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int      // Current score
	GameOver bool     // Whether the game has ended
	Paused   bool     // Whether the game is paused
	InMenu   bool     // Whether a menu screen is showing
	Stats    RunStats // Counters for the current or last run
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Sounds []Sound // cues raised during this tick, in order
	Quit   bool    // the game asked the platform to exit
}
