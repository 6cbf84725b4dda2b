package match

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/core"
	"github.com/vovakirdan/neon-paddle/internal/sim"
)

// maxFrameDelta bounds one engine step to a single reference frame. Longer
// elapsed times are replayed frame by frame so the per-step travel of the
// ball stays within the paddle overlap window.
const maxFrameDelta = 1.0

// Options wires optional collaborators into a Driver. Nil fields are skipped.
type Options struct {
	Announcer Announcer
	Observer  Observer
	OnResult  func(Result)
	Logger    *log.Logger
}

// Driver runs one match. It is not safe for concurrent use; front ends call
// it from a single goroutine.
type Driver struct {
	cfg      config.PaddleConfig
	settings config.Settings
	engine   *sim.Engine
	state    State
	opts     Options
	logger   *log.Logger
	duration time.Duration
}

// NewDriver creates a driver in StatusStart with a full clock.
func NewDriver(cfg config.PaddleConfig, settings config.Settings, rng *rand.Rand, opts Options) (*Driver, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	engine, err := sim.New(cfg, settings, rng)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Driver{
		cfg:      cfg,
		settings: settings,
		engine:   engine,
		opts:     opts,
		logger:   logger,
		duration: time.Duration(cfg.Match.DurationSecs) * time.Second,
	}
	engine.SetEventSink(sim.EventFuncs{Score: d.onScore, Rally: d.onRally})
	d.state = State{Status: StatusStart, TimeLeft: d.duration}
	return d, nil
}

// State returns the current match state.
func (d *Driver) State() State {
	return d.state
}

// Settings returns the active settings.
func (d *Driver) Settings() config.Settings {
	return d.settings
}

// Snapshot returns the engine snapshot. It is valid in every status.
func (d *Driver) Snapshot() sim.Snapshot {
	return d.engine.Snapshot()
}

// Engine exposes the engine for writing the input surface.
func (d *Driver) Engine() *sim.Engine {
	return d.engine
}

// Toggle is the play/pause control: Start and Paused begin playing, Playing
// pauses, GameOver starts a fresh match.
func (d *Driver) Toggle() {
	switch d.state.Status {
	case StatusStart:
		d.state.Status = StatusPlaying
		d.announce(startEvent(d.settings.Mode, d.state.Scores))
	case StatusPlaying:
		d.state.Status = StatusPaused
	case StatusPaused:
		d.state.Status = StatusPlaying
	case StatusGameOver:
		d.Reset()
		d.state.Status = StatusPlaying
	}
	d.logger.Debug("status changed", "status", d.state.Status)
}

// Reset clears scores, clock, commentary and engine state and returns to
// StatusStart.
func (d *Driver) Reset() {
	d.engine.Reset()
	d.state = State{Status: StatusStart, TimeLeft: d.duration}
	if d.opts.Announcer != nil {
		d.opts.Announcer.Clear()
	}
}

// End finishes a running match. Entity state is left as is so the final
// frame stays on screen.
func (d *Driver) End() {
	if d.state.Status != StatusPlaying && d.state.Status != StatusPaused {
		return
	}
	d.state.Status = StatusGameOver
	d.announce(gameOverEvent(d.state.Scores))

	result := Result{
		Mode:         string(d.settings.Mode),
		Difficulty:   string(d.settings.Difficulty),
		Scores:       d.state.Scores,
		LongestRally: d.state.LongestRally,
		Duration:     d.duration - d.state.TimeLeft,
		EndedAt:      time.Now(),
	}
	d.logger.Info("match over",
		"left", result.Scores.Left,
		"right", result.Scores.Right,
		"winner", result.Winner(),
		"longest_rally", result.LongestRally,
	)
	if d.opts.OnResult != nil {
		d.opts.OnResult(result)
	}
}

// SetSettings applies new settings. Mode and difficulty reach the engine
// immediately.
func (d *Driver) SetSettings(settings config.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := d.engine.SetSettings(settings); err != nil {
		return err
	}
	d.settings = settings
	return nil
}

// Tick advances the match by elapsed wall-clock time. It does nothing unless
// the match is playing.
func (d *Driver) Tick(elapsed time.Duration) {
	if d.state.Status != StatusPlaying || elapsed <= 0 {
		return
	}
	start := time.Now()

	dt := core.Frames(elapsed)
	for dt > 0 && d.state.Status == StatusPlaying {
		step := min(dt, maxFrameDelta)
		d.engine.Step(step)
		dt -= step
	}

	d.state.TimeLeft -= elapsed
	if d.state.TimeLeft <= 0 {
		d.state.TimeLeft = 0
		d.End()
	}

	if d.opts.Observer != nil {
		d.opts.Observer.ObserveTick(time.Since(start))
	}
}

// Run plays the match headless on a ticker until the clock runs out or ctx
// is done. A match in StatusStart is started first.
func (d *Driver) Run(ctx context.Context, tickRate int) error {
	if tickRate <= 0 {
		tickRate = core.ReferenceTickRate
	}
	if d.state.Status == StatusStart || d.state.Status == StatusPaused {
		d.Toggle()
	}

	interval := time.Second / time.Duration(tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			d.Tick(now.Sub(last))
			last = now
			if d.state.Status == StatusGameOver {
				return nil
			}
		}
	}
}

func (d *Driver) onScore(side sim.Side) {
	if side == sim.SideRight {
		d.state.Scores.Right++
	} else {
		d.state.Scores.Left++
	}
	if d.opts.Observer != nil {
		d.opts.Observer.PointScored(side.String())
	}
	d.announce(scoreEvent(side, d.state.Scores))
}

func (d *Driver) onRally(count int) {
	if count > d.state.LongestRally {
		d.state.LongestRally = count
	}
	if d.opts.Observer != nil {
		d.opts.Observer.PaddleHit(count)
	}
	if m := d.cfg.Match.RallyMilestone; m > 0 && count%m == 0 {
		d.announce(rallyEvent(count, d.state.Scores))
	}
}

func (d *Driver) announce(ev Event) {
	if d.opts.Announcer != nil {
		d.opts.Announcer.Announce(ev)
	}
}
