package sim

import (
	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/core"
)

// Input is the input surface: the desired centre Y of each human paddle.
// It is the only engine state external code writes directly.
type Input struct {
	LeftTarget  float64
	RightTarget float64
}

// Target returns the target for side.
func (in Input) Target(side Side) float64 {
	if side == SideRight {
		return in.RightTarget
	}
	return in.LeftTarget
}

// Set writes the target for side, clamped to [0, arenaH].
func (in *Input) Set(side Side, y, arenaH float64) {
	y = core.ClampF(y, 0, arenaH)
	if side == SideRight {
		in.RightTarget = y
		return
	}
	in.LeftTarget = y
}

// Nudge moves the target for side by delta, clamped to [0, arenaH].
func (in *Input) Nudge(side Side, delta, arenaH float64) {
	in.Set(side, in.Target(side)+delta, arenaH)
}

// MapPointer converts a screen coordinate into an arena coordinate given the
// rendered container's origin and size along the same axis.
func MapPointer(screen, origin, containerSize, arenaSize float64) float64 {
	if containerSize <= 0 {
		return 0
	}
	return (screen - origin) * (arenaSize / containerSize)
}

// PointerSide picks which paddle a pointer at arena x drives. In 1P mode the
// pointer always drives the left paddle; in 2P mode the arena half decides.
func PointerSide(mode config.Mode, x, arenaW float64) Side {
	if mode == config.Mode2P && x >= arenaW/2 {
		return SideRight
	}
	return SideLeft
}
