package sim

import (
	"math/rand"

	"github.com/vovakirdan/neon-paddle/internal/config"
)

// Opponent steers an AI paddle toward the ball with a difficulty-dependent
// gain and a random aiming error. It works for either side.
type Opponent struct {
	rng     *rand.Rand
	profile config.DifficultyProfile
	gain    float64
	arenaH  float64
}

// NewOpponent creates a controller drawing its aiming error from rng.
func NewOpponent(cfg config.PaddleConfig, profile config.DifficultyProfile, rng *rand.Rand) *Opponent {
	return &Opponent{
		rng:     rng,
		profile: profile,
		gain:    cfg.TrackingGain(profile),
		arenaH:  cfg.Arena.Height,
	}
}

// SetProfile switches difficulty. gain is the per-frame tracking gain.
func (o *Opponent) SetProfile(profile config.DifficultyProfile, gain float64) {
	o.profile = profile
	o.gain = gain
}

// Profile returns the active difficulty profile.
func (o *Opponent) Profile() config.DifficultyProfile {
	return o.profile
}

// Target returns where the paddle on side wants its centre to be: the ball's
// current Y while the ball approaches, the arena centre otherwise, plus a
// random error in [-ErrorMargin/2, ErrorMargin/2).
func (o *Opponent) Target(ball Ball, side Side) float64 {
	target := o.arenaH / 2
	if approaching(ball, side) {
		target = ball.Pos.Y
	}
	return target + (o.rng.Float64()-0.5)*o.profile.ErrorMargin
}

// Move returns the paddle eased toward Target over dt reference frames.
func (o *Opponent) Move(p Paddle, ball Ball, side Side, dt float64) Paddle {
	target := o.Target(ball, side)
	return p.MoveTo(p.Y+(target-p.Center())*easeGain(o.gain, dt), o.arenaH)
}

func approaching(ball Ball, side Side) bool {
	if side == SideRight {
		return ball.Vel.X > 0
	}
	return ball.Vel.X < 0
}
