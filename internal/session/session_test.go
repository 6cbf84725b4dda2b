package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/match"
	"github.com/vovakirdan/neon-paddle/internal/storage"
	"github.com/vovakirdan/neon-paddle/internal/telemetry"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := config.DefaultPaddleConfig()
	cfg.Match.DurationSecs = 2
	cfg.Commentary.RatePerSec = 0

	return Deps{
		Config:  cfg,
		Store:   store,
		Metrics: telemetry.New(),
	}
}

func TestSessionRecordsFinishedMatch(t *testing.T) {
	deps := testDeps(t)
	s, err := New(context.Background(), "local", "tester", deps, config.DefaultSettings(), 7)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	d := s.Driver()
	d.Toggle()
	for d.State().Status == match.StatusPlaying {
		d.Tick(100 * time.Millisecond)
	}

	got, err := deps.Store.RecentMatches(5)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 saved match, got %d", len(got))
	}
	if got[0].Mode != "1P" || got[0].Difficulty != "medium" {
		t.Errorf("unexpected record %+v", got[0])
	}
}

func TestSessionFeedReceivesCommentary(t *testing.T) {
	s, err := New(context.Background(), "local", "tester", testDeps(t), config.DefaultSettings(), 7)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	s.Driver().Toggle()

	deadline := time.Now().Add(2 * time.Second)
	for len(s.Feed()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("commentary feed stayed empty")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if s.Feed()[0].Kind != "start" {
		t.Errorf("first line kind = %q, want start", s.Feed()[0].Kind)
	}
}

func TestSessionSetSettings(t *testing.T) {
	s, err := New(context.Background(), "local", "tester", testDeps(t), config.DefaultSettings(), 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer s.Close()

	next := config.DefaultSettings()
	next.Mode = config.Mode2P
	next.Personality = config.PersonalityNeutral
	if err := s.SetSettings(next); err != nil {
		t.Fatalf("SetSettings() failed: %v", err)
	}
	if s.Driver().Settings().Mode != config.Mode2P {
		t.Error("mode change did not reach the driver")
	}

	bad := next
	bad.Mode = "3P"
	if err := s.SetSettings(bad); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Difficulty = "nightmare"
	if _, err := New(context.Background(), "x", "x", testDeps(t), settings, 1); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestSessionCloseIdempotent(t *testing.T) {
	s, err := New(context.Background(), "local", "tester", Deps{Config: config.DefaultPaddleConfig()}, config.DefaultSettings(), 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s.Close()
	s.Close()
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	deps := Deps{Config: config.DefaultPaddleConfig()}

	for _, id := range []ID{"b", "a"} {
		s, err := New(context.Background(), id, "u", deps, config.DefaultSettings(), 1)
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		r.Register(s)
	}

	if r.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", r.Count())
	}
	a, ok := r.Get("a")
	if !ok || a.User() != "u" {
		t.Fatal("Get(a) should find the session")
	}

	r.Unregister("a")
	a.Close()
	if _, ok := r.Get("a"); ok {
		t.Error("Get(a) should fail after Unregister")
	}

	r.CloseAll()
	if r.Count() != 0 {
		t.Errorf("Count() after CloseAll = %d, want 0", r.Count())
	}
}
