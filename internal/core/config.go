package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second for per-frame games (default 60)
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

// FrameInterval returns the per-frame delay for TickRate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the session state shared by every game.
type GameState struct {
	Score        int
	Phase        Phase
	TickInterval time.Duration
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the session is paused.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
