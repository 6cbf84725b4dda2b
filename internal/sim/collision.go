package sim

import (
	"math"

	"github.com/vovakirdan/neon-paddle/internal/core"
)

// bounceWalls reflects the ball off the top and bottom walls, losing energy
// and spin, and places it flush against the wall it hit.
func (e *Engine) bounceWalls() {
	b := &e.ball
	phys := e.cfg.Physics
	h := e.cfg.Arena.Height

	switch {
	case b.Pos.Y-b.Radius < 0:
		b.Pos.Y = b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y) * phys.WallRestitution
		b.Spin *= phys.WallSpinFriction
	case b.Pos.Y+b.Radius > h:
		b.Pos.Y = h - b.Radius
		b.Vel.Y = -math.Abs(b.Vel.Y) * phys.WallRestitution
		b.Spin *= phys.WallSpinFriction
	}
}

// paddleX returns the left edge of the paddle on side.
func (e *Engine) paddleX(side Side) float64 {
	if side == SideRight {
		return e.cfg.Arena.Width - e.cfg.Paddle.Offset - e.cfg.Paddle.Width
	}
	return e.cfg.Paddle.Offset
}

// face returns the x of the paddle surface the ball strikes.
func (e *Engine) face(side Side) float64 {
	if side == SideRight {
		return e.paddleX(side)
	}
	return e.paddleX(side) + e.cfg.Paddle.Width
}

func (e *Engine) paddle(side Side) Paddle {
	if side == SideRight {
		return e.right
	}
	return e.left
}

// collidePaddle resolves a hit between the ball and the paddle on side.
// vPaddle is the paddle's velocity this tick; prev is the ball centre before
// integration, used by swept detection. Steps longer than one frame always
// sweep, since the ball may travel further than the overlap window.
func (e *Engine) collidePaddle(side Side, vPaddle float64, prev Vec2, dt float64) {
	b := &e.ball
	if !approaching(*b, side) {
		return
	}
	p := e.paddle(side)
	x := e.paddleX(side)
	face := e.face(side)

	var overlapX bool
	if side == SideRight {
		overlapX = b.Pos.X+b.Radius >= face && b.Pos.X-b.Radius <= x+p.Width
	} else {
		overlapX = b.Pos.X-b.Radius <= face && b.Pos.X+b.Radius >= x
	}
	hit := overlapX && b.Pos.Y > p.Y && b.Pos.Y < p.Bottom()

	if !hit && (e.cfg.Physics.SweptCollision || dt > 1) {
		if y, ok := sweep(prev, b.Pos, face, p); ok {
			b.Pos.Y = y
			hit = true
		}
	}
	if !hit {
		return
	}

	phys := e.cfg.Physics
	b.Vel.X = -b.Vel.X
	if side == SideRight {
		b.Pos.X = face - b.Radius
	} else {
		b.Pos.X = face + b.Radius
	}

	b.Spin += vPaddle * phys.PaddleFriction
	relativeHit := core.ClampF((b.Pos.Y-p.Center())/(p.Height/2), -1, 1)
	b.Vel.Y += relativeHit*phys.VerticalKick + vPaddle*phys.VerticalDrag

	e.speedUp()
	e.rally++
	e.emitRally()
}

// sweep reports whether the ball centre crossed the face plane between prev
// and cur within the paddle's vertical extent, and the y of the crossing.
func sweep(prev, cur Vec2, face float64, p Paddle) (float64, bool) {
	if (prev.X-face)*(cur.X-face) > 0 || prev.X == cur.X {
		return 0, false
	}
	t := (prev.X - face) / (prev.X - cur.X)
	y := prev.Y + (cur.Y-prev.Y)*t
	if y <= p.Y || y >= p.Bottom() {
		return 0, false
	}
	return y, true
}

// speedUp multiplies the ball speed by the per-hit increment while it is
// below the cap, then clamps it to the cap.
func (e *Engine) speedUp() {
	b := &e.ball
	maxSpeed := e.cfg.Ball.MaxSpeed
	if b.Speed() < maxSpeed {
		b.Vel = b.Vel.Scale(e.cfg.Ball.SpeedIncrement)
	}
	if s := b.Speed(); s > maxSpeed {
		b.Vel = b.Vel.Scale(maxSpeed / s)
	}
}
