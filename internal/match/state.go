// Package match drives a paddle simulation through a timed match: it owns the
// match status, the clock and the scores, forwards engine events to
// commentary and metrics, and reports the result when the clock runs out.
package match

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a match.
type Status int

const (
	StatusStart Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

// String returns the status label shown in the HUD.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAMEOVER"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Scores holds points per side.
type Scores struct {
	Left  int
	Right int
}

// State is the match state visible to front ends.
type State struct {
	Status       Status
	Scores       Scores
	TimeLeft     time.Duration
	LongestRally int
}

// Clock formats TimeLeft as m:ss, rounding partial seconds up.
func (s State) Clock() string {
	secs := int((s.TimeLeft + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Result is a finished match as stored in history.
type Result struct {
	Mode         string
	Difficulty   string
	Scores       Scores
	LongestRally int
	Duration     time.Duration
	EndedAt      time.Time
}

// Winner returns "left", "right" or "draw".
func (r Result) Winner() string {
	switch {
	case r.Scores.Left > r.Scores.Right:
		return "left"
	case r.Scores.Right > r.Scores.Left:
		return "right"
	default:
		return "draw"
	}
}
