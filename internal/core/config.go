package core

import "time"

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform tells a game about the session it
// runs in. Screen sizes are in terminal cells.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 asks the platform to pick one
}

// DefaultConfig is an 80×24 terminal at the default tick rate with no seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// WithDefaults fills a missing tick rate and replaces a zero seed with one
// derived from now.
func (c RuntimeConfig) WithDefaults(now time.Time) RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c
}

// FrameSeconds is the length of one tick. A non-positive tick rate counts
// as the default.
func (c RuntimeConfig) FrameSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / DefaultTickRate
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the part of a game the platform needs to see.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is the outcome of one tick. Events are short human-readable
// notes for the log.
type StepResult struct {
	State  GameState
	Events []string
}
