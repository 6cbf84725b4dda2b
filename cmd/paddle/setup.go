package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-paddle/internal/commentary"
	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/session"
	"github.com/vovakirdan/neon-paddle/internal/storage"
	"github.com/vovakirdan/neon-paddle/internal/telemetry"
)

// apiKeyEnv names the variable holding the commentary API key.
const apiKeyEnv = "PADDLE_COMMENTARY_API_KEY"

// newLogger opens the logger for a command. Without --log-file it writes to
// fallback, which interactive commands set to io.Discard so the alt screen
// stays clean. The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newCommentator picks the HTTP commentator when an API key is configured and
// the offline canned voice otherwise.
func newCommentator(cfg config.CommentaryConfig, logger *log.Logger) commentary.Commentator {
	key := os.Getenv(apiKeyEnv)
	if key == "" {
		logger.Info("no commentary API key, using built-in lines")
		return commentary.NewCanned()
	}
	c, err := commentary.NewHTTPCommentator(cfg, key)
	if err != nil {
		logger.Warn("commentary client unavailable, using built-in lines", "err", err)
		return commentary.NewCanned()
	}
	return c
}

// startMetrics creates the collectors and serves them when --metrics-addr is
// set. The server stops with ctx.
func startMetrics(ctx context.Context, logger *log.Logger) *telemetry.Metrics {
	m := telemetry.New()
	if flagMetricsAddr == "" {
		return m
	}
	go func() {
		if err := m.Serve(ctx, flagMetricsAddr, logger); err != nil {
			logger.Error("metrics server failed", "err", err)
		}
	}()
	return m
}

// buildDeps loads the config and opens the shared services. The store may be
// nil when the database cannot be opened; matches still run. The returned
// func closes the store.
func buildDeps(ctx context.Context, logger *log.Logger) (session.Deps, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return session.Deps{}, nil, err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "err", err)
		store = nil
	}
	closeFn := func() {
		if store != nil {
			store.Close()
		}
	}

	return session.Deps{
		Config:      cfg,
		Commentator: newCommentator(cfg.Commentary, logger),
		Store:       store,
		Metrics:     startMetrics(ctx, logger),
		Logger:      logger,
	}, closeFn, nil
}

// settingsFromFlags builds and validates player settings.
func settingsFromFlags(mode, difficulty, personality, color string) (config.Settings, error) {
	s := config.Settings{
		Mode:        config.Mode(mode),
		Difficulty:  config.DifficultyPreset(difficulty),
		Personality: config.Personality(personality),
		Color:       color,
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}
