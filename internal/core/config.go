package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickRate     int           // Platform frames per second (default 60)
	TickInterval time.Duration // Simulation step period (default 200ms)
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickRate:     60,
		TickInterval: 200 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// FramesPerStep returns how many platform frames make up one simulation step.
// Always at least 1.
func (c RuntimeConfig) FramesPerStep() int {
	if c.TickRate <= 0 || c.TickInterval <= 0 {
		return 1
	}
	frame := time.Second / time.Duration(c.TickRate)
	n := int((c.TickInterval + frame/2) / frame)
	return max(1, n)
}

// Cue names a discrete audio-worthy moment. The platform decides how
// (or whether) to play it; games never know about sound output.
type Cue string

const (
	CueDotEaten  Cue = "dotEaten"
	CueBonus     Cue = "bonusEaten"
	CueCapture   Cue = "adversaryCaptured"
	CueGameOver  Cue = "gameOver"
	CueVictory   Cue = "victory"
	CueGateOpens Cue = "gateReleased"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game reached a terminal state (loss or win)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each platform frame.
type StepResult struct {
	State GameState
	Cues  []Cue // Audio cues raised during this frame, in order
}
