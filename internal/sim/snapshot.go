package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// PaddleView is a paddle as the renderer sees it.
type PaddleView struct {
	Paddle
	X float64 // Left edge
}

// Snapshot is a read-only copy of the engine state for renderers.
type Snapshot struct {
	Tick   uint64
	ArenaW float64
	ArenaH float64
	Ball   Ball
	Left   PaddleView
	Right  PaddleView
	Rally  int
}

// Snapshot returns a copy of the current state. Mutating it does not affect
// the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:   e.tick,
		ArenaW: e.cfg.Arena.Width,
		ArenaH: e.cfg.Arena.Height,
		Ball:   e.ball,
		Left:   PaddleView{Paddle: e.left, X: e.paddleX(SideLeft)},
		Right:  PaddleView{Paddle: e.right, X: e.paddleX(SideRight)},
		Rally:  e.rally,
	}
}

// Hash returns a hash of the dynamic state for determinism checks.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	write := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:]) //nolint:errcheck // hash writes never fail
	}
	binary.LittleEndian.PutUint64(buf[:], s.Tick)
	h.Write(buf[:]) //nolint:errcheck // hash writes never fail
	for _, v := range []float64{
		s.Ball.Pos.X, s.Ball.Pos.Y, s.Ball.Vel.X, s.Ball.Vel.Y, s.Ball.Spin,
		s.Left.Y, s.Right.Y, float64(s.Rally),
	} {
		write(v)
	}
	return h.Sum64()
}
