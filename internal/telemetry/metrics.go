// Package telemetry exposes Prometheus metrics for the simulation and its
// collaborators. Label values are bounded: sides, outcomes and modes only.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors. It implements match.Observer and
// commentary.Observer.
type Metrics struct {
	registry *prometheus.Registry

	tickDuration prometheus.Histogram
	points       *prometheus.CounterVec
	paddleHits   prometheus.Counter
	rallyLength  prometheus.Histogram
	commentary   *prometheus.CounterVec
	matches      *prometheus.CounterVec
	sessions     prometheus.Gauge
}

// New creates collectors registered on a private registry, so several
// instances can coexist in tests.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "paddle_tick_duration_seconds",
			Help:    "Time spent in one match tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025},
		}),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paddle_points_total",
			Help: "Points scored",
		}, []string{"side"}), // Bounded: "left", "right"
		paddleHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "paddle_hits_total",
			Help: "Ball to paddle collisions",
		}),
		rallyLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "paddle_rally_hits",
			Help:    "Rally length observed at every hit",
			Buckets: []float64{1, 2, 5, 10, 20, 50},
		}),
		commentary: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paddle_commentary_total",
			Help: "Commentary requests by outcome",
		}, []string{"outcome"}), // Bounded: "ok", "empty", "error", "dropped"
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "paddle_matches_total",
			Help: "Finished matches",
		}, []string{"mode", "winner"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "paddle_ssh_sessions_active",
			Help: "Currently connected SSH sessions",
		}),
	}
	m.registry.MustRegister(
		m.tickDuration,
		m.points,
		m.paddleHits,
		m.rallyLength,
		m.commentary,
		m.matches,
		m.sessions,
	)
	return m
}

// ObserveTick records the time one tick took.
func (m *Metrics) ObserveTick(d time.Duration) {
	m.tickDuration.Observe(d.Seconds())
}

// PointScored counts a point for side.
func (m *Metrics) PointScored(side string) {
	m.points.WithLabelValues(side).Inc()
}

// PaddleHit counts a collision at the given rally length.
func (m *Metrics) PaddleHit(rally int) {
	m.paddleHits.Inc()
	m.rallyLength.Observe(float64(rally))
}

// CommentaryOutcome counts a commentary request result.
func (m *Metrics) CommentaryOutcome(outcome string) {
	m.commentary.WithLabelValues(outcome).Inc()
}

// MatchFinished counts a finished match.
func (m *Metrics) MatchFinished(mode, winner string) {
	m.matches.WithLabelValues(mode, winner).Inc()
}

// SessionOpened counts a new SSH session.
func (m *Metrics) SessionOpened() {
	m.sessions.Inc()
}

// SessionClosed counts an SSH session ending.
func (m *Metrics) SessionClosed() {
	m.sessions.Dec()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics and /health on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
