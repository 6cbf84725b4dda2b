package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-paddle/internal/config"
)

// Engine owns the ball, both paddles, the input surface and the rally
// counter. It is not safe for concurrent use; one tick runs to completion.
type Engine struct {
	cfg      config.PaddleConfig
	rng      *rand.Rand
	sink     EventSink
	opponent *Opponent

	ball  Ball
	left  Paddle
	right Paddle
	input Input

	rally int
	tick  uint64
}

// New creates an engine for cfg and settings. The right paddle is AI driven
// in 1P mode. rng supplies serve jitter and AI aiming error; a nil rng is
// replaced by a zero-seeded source.
func New(cfg config.PaddleConfig, settings config.Settings, rng *rand.Rand) (*Engine, error) {
	profile, err := cfg.Profile(settings.Difficulty)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0)) //nolint:gosec // simulation randomness, not security
	}

	e := &Engine{
		cfg:      cfg,
		rng:      rng,
		opponent: NewOpponent(cfg, profile, rng),
		left: Paddle{
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		right: Paddle{
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
			IsAI:   settings.RightIsAI(),
		},
	}
	e.Reset()
	return e, nil
}

// SetEventSink replaces the receiver of score and rally events.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetSettings applies mode and difficulty. Takes effect on the next Step.
func (e *Engine) SetSettings(settings config.Settings) error {
	profile, err := e.cfg.Profile(settings.Difficulty)
	if err != nil {
		return err
	}
	e.opponent.SetProfile(profile, e.cfg.TrackingGain(profile))
	e.right.IsAI = settings.RightIsAI()
	return nil
}

// SetLeftAI hands the left paddle to the opponent controller. Used for
// AI-vs-AI demo runs.
func (e *Engine) SetLeftAI(on bool) {
	e.left.IsAI = on
}

// Reset restores the initial state: paddles centred, input targets centred,
// ball at the centre moving right, rally and tick counters cleared.
func (e *Engine) Reset() {
	w, h := e.cfg.Arena.Width, e.cfg.Arena.Height
	top := h/2 - e.cfg.Paddle.Height/2

	e.left.Y, e.left.PrevY = top, top
	e.right.Y, e.right.PrevY = top, top
	e.input = Input{LeftTarget: h / 2, RightTarget: h / 2}
	e.ball = Ball{
		Pos:    Vec2{X: w / 2, Y: h / 2},
		Vel:    Vec2{X: e.cfg.Ball.InitialSpeed},
		Radius: e.cfg.Ball.Radius,
	}
	e.rally = 0
	e.tick = 0
}

// Input returns a copy of the input surface.
func (e *Engine) Input() Input {
	return e.input
}

// SetTarget sets the desired centre Y for a human paddle.
func (e *Engine) SetTarget(side Side, y float64) {
	e.input.Set(side, y, e.cfg.Arena.Height)
}

// Nudge moves a human paddle target by steps key steps. Negative is up.
func (e *Engine) Nudge(side Side, steps float64) {
	e.input.Nudge(side, steps*e.cfg.Input.KeyStep, e.cfg.Arena.Height)
}

// Point routes a pointer at arena coordinates (x, y) to the paddle it
// controls in mode.
func (e *Engine) Point(mode config.Mode, x, y float64) {
	e.SetTarget(PointerSide(mode, x, e.cfg.Arena.Width), y)
}

// Rally returns the number of consecutive paddle hits since the last serve.
func (e *Engine) Rally() int {
	return e.rally
}

// Tick returns the number of steps taken since Reset.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// Step advances the simulation by dt reference frames (1.0 is one 60 Hz
// frame). Score and rally events fire synchronously before Step returns.
func (e *Engine) Step(dt float64) {
	if dt <= 0 {
		return
	}
	e.tick++

	e.left = e.movePaddle(e.left, SideLeft, dt)
	e.right = e.movePaddle(e.right, SideRight, dt)
	vLeft := e.left.Velocity(dt)
	vRight := e.right.Velocity(dt)

	phys := e.cfg.Physics
	e.ball.Vel.Y += e.ball.Spin * phys.SpinInfluence * dt
	e.ball.Vel = e.ball.Vel.Scale(decay(phys.AirDrag, dt))
	e.ball.Spin *= decay(phys.SpinDecay, dt)

	prev := e.ball.Pos
	e.ball.Pos = e.ball.Pos.Add(e.ball.Vel.Scale(dt))

	e.bounceWalls()
	e.collidePaddle(SideLeft, vLeft, prev, dt)
	e.collidePaddle(SideRight, vRight, prev, dt)
	e.checkScore()
}

func (e *Engine) movePaddle(p Paddle, side Side, dt float64) Paddle {
	if p.IsAI {
		return e.opponent.Move(p, e.ball, side, dt)
	}
	target := e.input.Target(side)
	gain := easeGain(e.cfg.Paddle.SmoothingGain, dt)
	return p.MoveTo(p.Y+(target-p.Center())*gain, e.cfg.Arena.Height)
}

// easeGain converts a per-frame easing gain into the gain for dt frames so
// that n steps of dt=1 and one step of dt=n close the same fraction of the gap.
func easeGain(gain, dt float64) float64 {
	if dt == 1 {
		return gain
	}
	return 1 - math.Pow(1-gain, dt)
}

// decay scales a per-frame multiplicative factor to dt frames.
func decay(factor, dt float64) float64 {
	if dt == 1 {
		return factor
	}
	return math.Pow(factor, dt)
}
