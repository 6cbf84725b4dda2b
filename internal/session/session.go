// Package session wires one match to the services shared by every player:
// the history store, metrics and commentary. Local play and each SSH
// connection get their own Session.
package session

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-paddle/internal/commentary"
	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/match"
	"github.com/vovakirdan/neon-paddle/internal/storage"
	"github.com/vovakirdan/neon-paddle/internal/telemetry"
)

// ID uniquely identifies a session (a terminal or an SSH connection).
type ID string

// Deps are the services shared by every session. Nil fields are skipped,
// except Commentator which falls back to the offline canned voice.
type Deps struct {
	Config      config.PaddleConfig
	Commentator commentary.Commentator
	Store       *storage.Store
	Metrics     *telemetry.Metrics
	Logger      *log.Logger
}

// Session owns a match driver and its commentary worker.
type Session struct {
	id         ID
	user       string
	driver     *match.Driver
	commentary *commentary.Dispatcher
	cancel     context.CancelFunc
	closeOnce  sync.Once
}

// New creates a session and starts its commentary worker. The worker stops
// when ctx is done or Close is called.
func New(ctx context.Context, id ID, user string, deps Deps, settings config.Settings, seed int64) (*Session, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", string(id))

	c := deps.Commentator
	if c == nil {
		c = commentary.NewCanned()
	}
	disp := commentary.NewDispatcher(c, deps.Config.Commentary, settings.Personality, logger)

	opts := match.Options{
		Announcer: disp,
		Logger:    logger,
		OnResult: func(r match.Result) {
			record(deps, logger, r)
		},
	}
	if deps.Metrics != nil {
		opts.Observer = deps.Metrics
		disp.SetObserver(deps.Metrics)
	}

	driver, err := match.NewDriver(deps.Config, settings, rand.New(rand.NewSource(seed)), opts)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	disp.Start(ctx)

	return &Session{
		id:         id,
		user:       user,
		driver:     driver,
		commentary: disp,
		cancel:     cancel,
	}, nil
}

// record persists and counts a finished match. Failures are logged only.
func record(deps Deps, logger *log.Logger, r match.Result) {
	if deps.Metrics != nil {
		deps.Metrics.MatchFinished(r.Mode, r.Winner())
	}
	if deps.Store == nil {
		return
	}
	if err := deps.Store.SaveResult(r); err != nil {
		logger.Warn("could not save match", "err", err)
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// User returns the player name the session was opened for.
func (s *Session) User() string {
	return s.user
}

// Driver returns the match driver. Only the session's own goroutine may
// call it.
func (s *Session) Driver() *match.Driver {
	return s.driver
}

// Feed returns the commentary feed, newest first.
func (s *Session) Feed() []commentary.Line {
	return s.commentary.Feed()
}

// SetSettings applies settings to the match and the commentary voice.
func (s *Session) SetSettings(settings config.Settings) error {
	if err := s.driver.SetSettings(settings); err != nil {
		return err
	}
	s.commentary.SetPersonality(settings.Personality)
	return nil
}

// Close stops the commentary worker. Safe to call multiple times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		s.commentary.Stop()
	})
}
