package commentary

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/match"
)

func testConfig() config.CommentaryConfig {
	cfg := config.DefaultPaddleConfig().Commentary
	cfg.RatePerSec = 0 // unlimited
	return cfg
}

type outcomeCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (o *outcomeCounter) CommentaryOutcome(outcome string) {
	o.mu.Lock()
	o.counts[outcome]++
	o.mu.Unlock()
}

func (o *outcomeCounter) get(outcome string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.counts[outcome]
}

// waitForFeed polls until the feed holds n lines or the deadline passes.
func waitForFeed(t *testing.T, d *Dispatcher, n int) []Line {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if feed := d.Feed(); len(feed) >= n {
			return feed
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("feed did not reach %d lines, have %d", n, len(d.Feed()))
	return nil
}

func TestDispatcherProducesLines(t *testing.T) {
	var got []Request
	var mu sync.Mutex
	c := CommentatorFunc(func(_ context.Context, req Request) (string, error) {
		mu.Lock()
		got = append(got, req)
		mu.Unlock()
		return "  Nice return.  ", nil
	})

	d := NewDispatcher(c, testConfig(), config.PersonalityNeutral, nil)
	d.Start(context.Background())
	defer d.Stop()

	d.Announce(match.Event{
		Kind:   match.EventScore,
		Text:   "Player scored!",
		Scores: match.Scores{Left: 2, Right: 1},
	})

	feed := waitForFeed(t, d, 1)
	if feed[0].Text != "Nice return." || feed[0].Kind != "score" {
		t.Errorf("line = %+v", feed[0])
	}

	mu.Lock()
	defer mu.Unlock()
	req := got[0]
	if req.Event != "Player scored!" || req.LeftScore != 2 || req.RightScore != 1 {
		t.Errorf("request = %+v", req)
	}
	if req.Personality != config.PersonalityNeutral || req.GameOver {
		t.Errorf("request personality/gameover = %v/%v", req.Personality, req.GameOver)
	}
}

func TestDispatcherFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		err     error
		want    string
		outcome string
	}{
		{"error", "", errors.New("boom"), FallbackOnError, OutcomeError},
		{"empty", "   ", nil, FallbackOnEmpty, OutcomeEmpty},
		{"ok", "Ace!", nil, "Ace!", OutcomeOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CommentatorFunc(func(context.Context, Request) (string, error) {
				return tt.text, tt.err
			})
			obs := &outcomeCounter{counts: map[string]int{}}
			d := NewDispatcher(c, testConfig(), config.PersonalitySarcastic, nil)
			d.SetObserver(obs)
			d.Start(context.Background())
			defer d.Stop()

			d.Announce(match.Event{Kind: match.EventRally, Text: "rally"})

			feed := waitForFeed(t, d, 1)
			if feed[0].Text != tt.want {
				t.Errorf("line = %q, want %q", feed[0].Text, tt.want)
			}
			if obs.get(tt.outcome) != 1 {
				t.Errorf("outcome %q not observed: %v", tt.outcome, obs.counts)
			}
		})
	}
}

func TestDispatcherFeedKeepsNewestFive(t *testing.T) {
	echo := CommentatorFunc(func(_ context.Context, req Request) (string, error) {
		return req.Event, nil
	})
	d := NewDispatcher(echo, testConfig(), config.PersonalityNeutral, nil)
	d.Start(context.Background())
	defer d.Stop()

	for _, text := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		d.Announce(match.Event{Kind: match.EventScore, Text: text})
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			if feed := d.Feed(); len(feed) > 0 && feed[0].Text == text {
				break
			}
			time.Sleep(5 * time.Millisecond)
		}
	}

	feed := d.Feed()
	if len(feed) != 5 {
		t.Fatalf("feed length = %d, want 5", len(feed))
	}
	want := []string{"g", "f", "e", "d", "c"}
	for i, l := range feed {
		if l.Text != want[i] {
			t.Errorf("feed[%d] = %q, want %q", i, l.Text, want[i])
		}
	}
}

func TestDispatcherRecentContext(t *testing.T) {
	reqs := make(chan Request, 4)
	c := CommentatorFunc(func(_ context.Context, req Request) (string, error) {
		reqs <- req
		return "line", nil
	})
	d := NewDispatcher(c, testConfig(), config.PersonalityNeutral, nil)
	d.Start(context.Background())
	defer d.Stop()

	d.Announce(match.Event{Kind: match.EventStart})
	<-reqs
	waitForFeed(t, d, 1)

	d.Announce(match.Event{Kind: match.EventGameOver, GameOver: true})
	req := <-reqs
	if !req.GameOver || len(req.Recent) != 1 || req.Recent[0] != "line" {
		t.Errorf("request = %+v, want game over with one recent line", req)
	}
}

func TestDispatcherAnnounceNeverBlocks(t *testing.T) {
	cfg := testConfig()
	cfg.QueueSize = 2
	obs := &outcomeCounter{counts: map[string]int{}}
	d := NewDispatcher(NewCanned(), cfg, config.PersonalityNeutral, nil)
	d.SetObserver(obs)
	// Worker not started: the queue fills after two events.

	done := make(chan struct{})
	go func() {
		for range 10 {
			d.Announce(match.Event{Kind: match.EventScore})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Announce blocked on a full queue")
	}
	if got := obs.get(OutcomeDropped); got != 8 {
		t.Errorf("dropped = %d, want 8", got)
	}
}

func TestDispatcherClear(t *testing.T) {
	d := NewDispatcher(NewCanned(), testConfig(), config.PersonalityNeutral, nil)
	d.Start(context.Background())
	defer d.Stop()

	d.Announce(match.Event{Kind: match.EventStart})
	waitForFeed(t, d, 1)

	d.Clear()
	if len(d.Feed()) != 0 {
		t.Error("Clear should empty the feed")
	}
}

func TestDispatcherStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := NewDispatcher(NewCanned(), testConfig(), config.PersonalityNeutral, nil)
	d.Start(ctx)
	cancel()

	stopped := make(chan struct{})
	go func() {
		d.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestDispatcherPersonalitySwitch(t *testing.T) {
	reqs := make(chan Request, 1)
	c := CommentatorFunc(func(_ context.Context, req Request) (string, error) {
		reqs <- req
		return "x", nil
	})
	d := NewDispatcher(c, testConfig(), config.PersonalityNeutral, nil)
	d.SetPersonality(config.PersonalityEnthusiastic)
	d.Start(context.Background())
	defer d.Stop()

	d.Announce(match.Event{Kind: match.EventScore})
	if req := <-reqs; req.Personality != config.PersonalityEnthusiastic {
		t.Errorf("personality = %v, want enthusiastic", req.Personality)
	}
}
