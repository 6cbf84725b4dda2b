package match

import (
	"fmt"
	"time"

	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/sim"
)

// EventKind classifies match events forwarded to commentary.
type EventKind int

const (
	EventStart EventKind = iota
	EventScore
	EventRally
	EventGameOver
)

// String returns the event kind name used in logs and metrics labels.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventScore:
		return "score"
	case EventRally:
		return "rally"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a commentary-worthy moment of the match.
type Event struct {
	Kind     EventKind
	Text     string // Short description of what just happened
	Scores   Scores
	GameOver bool
}

// Announcer receives match events. Announce must not block the tick.
type Announcer interface {
	Announce(ev Event)
	Clear()
}

// Observer receives per-tick measurements.
type Observer interface {
	ObserveTick(d time.Duration)
	PointScored(side string)
	PaddleHit(rally int)
}

func startEvent(mode config.Mode, scores Scores) Event {
	return Event{
		Kind:   EventStart,
		Text:   fmt.Sprintf("Game start! %s battle engaged.", mode),
		Scores: scores,
	}
}

func scoreEvent(side sim.Side, scores Scores) Event {
	text := "Player scored!"
	if side == sim.SideRight {
		text = "Opponent scored!"
	}
	return Event{Kind: EventScore, Text: text, Scores: scores}
}

func rallyEvent(count int, scores Scores) Event {
	return Event{
		Kind:   EventRally,
		Text:   fmt.Sprintf("Massive rally! %d consecutive hits.", count),
		Scores: scores,
	}
}

func gameOverEvent(scores Scores) Event {
	return Event{Kind: EventGameOver, Text: "Game over summary", Scores: scores, GameOver: true}
}
