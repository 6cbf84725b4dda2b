package commentary

import (
	"context"
	"fmt"
	"sync"

	"github.com/vovakirdan/neon-paddle/internal/config"
)

// Canned is an offline commentator that cycles through built-in lines. It is
// used when no commentary service is configured.
type Canned struct {
	mu   sync.Mutex
	next map[string]int
}

// NewCanned creates an offline commentator.
func NewCanned() *Canned {
	return &Canned{next: make(map[string]int)}
}

var cannedLines = map[config.Personality]map[string][]string{
	config.PersonalityEnthusiastic: {
		"start": {"HERE WE GO! The paddles are LIVE!", "LET'S GET READY TO RALLY!"},
		"score": {"WHAT A SHOT! Nobody saw that coming!", "IT'S IN! The crowd is ON ITS FEET!", "UNSTOPPABLE! Absolutely UNSTOPPABLE!"},
		"rally": {"THIS RALLY IS ON FIRE!", "Back and forth, back and forth, INCREDIBLE!"},
	},
	config.PersonalitySarcastic: {
		"start": {"Oh good, another match. Try to keep up.", "Let's see how long the human lasts."},
		"score": {"A point. Don't let it go to your head.", "Even a broken paddle is right twice a match.", "Riveting. Truly riveting."},
		"rally": {"Still going? Someone has to miss eventually.", "Impressive stamina for such limited talent."},
	},
	config.PersonalityNeutral: {
		"start": {"Players are set. The serve goes out from centre court.", "Match underway. Ninety seconds on the clock."},
		"score": {"Point awarded. The ball got past the paddle.", "Clean finish on that exchange.", "The score moves on."},
		"rally": {"An extended exchange. Ball speed is climbing.", "Consistent returns from both sides."},
	},
}

// Comment implements Commentator.
func (c *Canned) Comment(_ context.Context, req Request) (string, error) {
	if req.GameOver {
		return gameOverLine(req), nil
	}

	byKind, ok := cannedLines[req.Personality]
	if !ok {
		byKind = cannedLines[config.PersonalityNeutral]
	}
	lines := byKind[req.Kind]
	if len(lines) == 0 {
		return req.Event, nil
	}

	c.mu.Lock()
	key := string(req.Personality) + "/" + req.Kind
	i := c.next[key]
	c.next[key] = (i + 1) % len(lines)
	c.mu.Unlock()

	return lines[i], nil
}

func gameOverLine(req Request) string {
	switch {
	case req.LeftScore > req.RightScore:
		return fmt.Sprintf("Final whistle! Player takes it %d to %d.", req.LeftScore, req.RightScore)
	case req.RightScore > req.LeftScore:
		return fmt.Sprintf("Final whistle! Opponent takes it %d to %d.", req.RightScore, req.LeftScore)
	default:
		return fmt.Sprintf("Final whistle! Dead even at %d apiece.", req.LeftScore)
	}
}
