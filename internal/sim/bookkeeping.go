package sim

import "github.com/vovakirdan/neon-paddle/internal/config"

// EventSink receives match events from the engine. Calls are synchronous and
// happen inside Step.
type EventSink interface {
	OnScore(side Side)
	OnRally(count int)
}

// EventFuncs adapts plain functions to EventSink. Nil fields are skipped.
type EventFuncs struct {
	Score func(side Side)
	Rally func(count int)
}

// OnScore implements EventSink.
func (f EventFuncs) OnScore(side Side) {
	if f.Score != nil {
		f.Score(side)
	}
}

// OnRally implements EventSink.
func (f EventFuncs) OnRally(count int) {
	if f.Rally != nil {
		f.Rally(count)
	}
}

func (e *Engine) emitRally() {
	if e.sink != nil {
		e.sink.OnRally(e.rally)
	}
}

// checkScore awards a point when the ball centre leaves the arena
// horizontally and serves immediately.
func (e *Engine) checkScore() {
	var scorer Side
	switch {
	case e.ball.Pos.X < 0:
		scorer = SideRight
	case e.ball.Pos.X > e.cfg.Arena.Width:
		scorer = SideLeft
	default:
		return
	}
	if e.sink != nil {
		e.sink.OnScore(scorer)
	}
	e.Serve(e.serveDirection(scorer))
}

// serveDirection returns the sign of the serve's horizontal velocity after
// scorer won a point.
func (e *Engine) serveDirection(scorer Side) float64 {
	toward := scorer.Opposite()
	if e.cfg.Ball.ServeToward == config.ServeTowardScorer {
		toward = scorer
	}
	if toward == SideLeft {
		return -1
	}
	return 1
}

// Serve puts the ball at the centre moving horizontally in direction dir
// (+1 right, -1 left) with a random vertical component, clears spin and
// resets the rally counter.
func (e *Engine) Serve(dir float64) {
	e.ball.Pos = Vec2{X: e.cfg.Arena.Width / 2, Y: e.cfg.Arena.Height / 2}
	e.ball.Vel = Vec2{
		X: dir * e.cfg.Ball.InitialSpeed,
		Y: (e.rng.Float64() - 0.5) * e.cfg.Ball.ServeJitter,
	}
	e.ball.Spin = 0
	e.rally = 0
}
