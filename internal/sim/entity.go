// Package sim implements the paddle simulation: ball and paddle state, the
// spin-aware physics step, the opponent controller and rally bookkeeping.
//
// The package is pure: it never touches the terminal, the clock or global
// randomness. Callers drive it with Engine.Step and read it with Snapshot.
package sim

import (
	"math"

	"github.com/vovakirdan/neon-paddle/internal/core"
)

// Vec2 is a 2D vector in arena units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Ball is the ball state. Pos is the centre.
type Ball struct {
	Pos    Vec2
	Vel    Vec2 // Arena units per reference frame
	Radius float64
	Spin   float64 // Positive spin curves the ball downward
}

// Speed returns the ball's speed.
func (b Ball) Speed() float64 {
	return b.Vel.Len()
}

// Paddle is an immutable paddle record. Moving a paddle yields a new value
// whose PrevY holds the position before the move.
type Paddle struct {
	Y      float64 // Top edge
	PrevY  float64
	Width  float64
	Height float64
	IsAI   bool
}

// Center returns the vertical centre of the paddle.
func (p Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// Bottom returns the bottom edge of the paddle.
func (p Paddle) Bottom() float64 {
	return p.Y + p.Height
}

// MoveTo returns the paddle placed at y, clamped so it stays inside an arena
// of height arenaH.
func (p Paddle) MoveTo(y, arenaH float64) Paddle {
	moved := p
	moved.PrevY = p.Y
	moved.Y = core.ClampF(y, 0, math.Max(0, arenaH-p.Height))
	return moved
}

// Velocity returns the paddle's vertical velocity over the last move, in
// arena units per reference frame.
func (p Paddle) Velocity(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return (p.Y - p.PrevY) / dt
}

// Side identifies one half of the arena.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name used in events and storage.
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideRight {
		return SideLeft
	}
	return SideRight
}
