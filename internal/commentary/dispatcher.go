package commentary

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"

	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/match"
)

// Outcomes reported to an Observer.
const (
	OutcomeOK      = "ok"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
	OutcomeDropped = "dropped"
)

// Observer counts commentary outcomes.
type Observer interface {
	CommentaryOutcome(outcome string)
}

// Line is one entry of the commentary feed.
type Line struct {
	Text string
	Kind string
	At   time.Time
}

// Dispatcher implements match.Announcer. Announce never blocks: events are
// queued and dropped when the queue is full. A single worker turns them into
// lines, newest first.
type Dispatcher struct {
	commentator Commentator
	limiter     *rate.Limiter
	queue       chan Request
	timeout     time.Duration
	feedSize    int
	logger      *log.Logger

	mu          sync.Mutex
	feed        []Line
	personality config.Personality
	observer    Observer

	quit     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

var _ match.Announcer = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher. Call Start to begin processing.
func NewDispatcher(c Commentator, cfg config.CommentaryConfig, personality config.Personality, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}
	queueSize := max(cfg.QueueSize, 1)
	feedSize := max(cfg.FeedSize, 1)

	return &Dispatcher{
		commentator: c,
		limiter:     rate.NewLimiter(limit, max(cfg.Burst, 1)),
		queue:       make(chan Request, queueSize),
		timeout:     time.Duration(cfg.TimeoutMs) * time.Millisecond,
		feedSize:    feedSize,
		logger:      logger,
		personality: personality,
		quit:        make(chan struct{}),
	}
}

// SetPersonality changes the voice for events announced from now on.
func (d *Dispatcher) SetPersonality(p config.Personality) {
	d.mu.Lock()
	d.personality = p
	d.mu.Unlock()
}

// SetObserver installs an outcome observer.
func (d *Dispatcher) SetObserver(o Observer) {
	d.mu.Lock()
	d.observer = o
	d.mu.Unlock()
}

// Start launches the worker. It stops when ctx is done or Stop is called.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.worker(ctx)
}

// Stop shuts the worker down and waits for it. Queued events are discarded.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.quit)
	})
	d.wg.Wait()
}

// Announce queues ev for commentary.
func (d *Dispatcher) Announce(ev match.Event) {
	d.mu.Lock()
	req := Request{
		Kind:        ev.Kind.String(),
		Event:       ev.Text,
		LeftScore:   ev.Scores.Left,
		RightScore:  ev.Scores.Right,
		Personality: d.personality,
		GameOver:    ev.GameOver,
		Recent:      d.recentLocked(),
	}
	d.mu.Unlock()

	select {
	case d.queue <- req:
	default:
		d.logger.Debug("commentary queue full, dropping event", "kind", req.Kind)
		d.observe(OutcomeDropped)
	}
}

// Clear empties the feed. Requests already in flight still land.
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	d.feed = nil
	d.mu.Unlock()
}

// Feed returns the recent lines, newest first.
func (d *Dispatcher) Feed() []Line {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Line, len(d.feed))
	copy(out, d.feed)
	return out
}

func (d *Dispatcher) recentLocked() []string {
	out := make([]string, 0, len(d.feed))
	for _, l := range d.feed {
		out = append(out, l.Text)
	}
	return out
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-d.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case req := <-d.queue:
			if err := d.limiter.Wait(ctx); err != nil {
				return
			}
			d.process(ctx, req)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, req Request) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	text, err := d.commentator.Comment(ctx, req)
	text = strings.TrimSpace(text)
	switch {
	case err != nil:
		d.logger.Warn("commentary failed", "kind", req.Kind, "err", err)
		text = FallbackOnError
		d.observe(OutcomeError)
	case text == "":
		text = FallbackOnEmpty
		d.observe(OutcomeEmpty)
	default:
		d.observe(OutcomeOK)
	}

	d.push(Line{Text: text, Kind: req.Kind, At: time.Now()})
}

func (d *Dispatcher) push(l Line) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.feed = append([]Line{l}, d.feed...)
	if len(d.feed) > d.feedSize {
		d.feed = d.feed[:d.feedSize]
	}
}

func (d *Dispatcher) observe(outcome string) {
	d.mu.Lock()
	o := d.observer
	d.mu.Unlock()
	if o != nil {
		o.CommentaryOutcome(outcome)
	}
}
