// Package commentary turns match events into short lines of play-by-play.
// A Dispatcher queues events off the simulation goroutine, asks a
// Commentator for text under a rate limit and keeps a feed of recent lines.
package commentary

import (
	"context"

	"github.com/vovakirdan/neon-paddle/internal/config"
)

// Lines shown when the commentator fails or has nothing to say.
const (
	FallbackOnError = "The crowd goes wild!"
	FallbackOnEmpty = "What a play!"
)

// Request describes one commentary-worthy moment.
type Request struct {
	Kind        string // start, score, rally or game_over
	Event       string
	LeftScore   int
	RightScore  int
	Personality config.Personality
	GameOver    bool
	Recent      []string // Newest first
}

// Commentator produces a line of commentary for a request.
type Commentator interface {
	Comment(ctx context.Context, req Request) (string, error)
}

// CommentatorFunc adapts a function to Commentator.
type CommentatorFunc func(ctx context.Context, req Request) (string, error)

// Comment implements Commentator.
func (f CommentatorFunc) Comment(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
