package core

import (
	"math"
	"time"
)

// ReferenceTickRate is the cadence the simulation constants are tuned for.
// A tick at this rate advances the simulation by exactly one reference frame.
const ReferenceTickRate = 60

// RuntimeConfig contains configuration passed to the simulation at startup.
// Front ends use it to size the terminal view and seed the RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for reproducible runs
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: ReferenceTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval returns the wall-clock period of one tick at the configured
// rate. Non-positive rates fall back to the reference rate.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = ReferenceTickRate
	}
	return time.Second / time.Duration(rate)
}

// frameSnap is how close a frame count must be to a whole number to be
// treated as one. Durations are whole nanoseconds, so 1/60 s is never exact.
const frameSnap = 1e-6

// Frames converts wall-clock time into reference frames.
func Frames(elapsed time.Duration) float64 {
	f := elapsed.Seconds() * ReferenceTickRate
	if r := math.Round(f); math.Abs(f-r) < frameSnap {
		return r
	}
	return f
}
