package config

import (
	"errors"
	"fmt"
)

// Mode selects who controls the right paddle.
type Mode string

const (
	Mode1P Mode = "1P" // Right paddle is AI-controlled
	Mode2P Mode = "2P" // Right paddle follows a second input target
)

// DifficultyPreset names a difficulty profile.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Personality selects the commentary voice.
type Personality string

const (
	PersonalityEnthusiastic Personality = "enthusiastic"
	PersonalitySarcastic    Personality = "sarcastic"
	PersonalityNeutral      Personality = "neutral"
)

// Serve direction conventions for BallConfig.ServeToward.
const (
	ServeTowardConceder = "conceder" // Serve travels toward the side that lost the point
	ServeTowardScorer   = "scorer"   // Serve travels toward the side that won the point
)

// ThemeColors lists the colors accepted by Settings.Color.
var ThemeColors = []string{"cyan", "pink", "yellow", "green"}

var (
	ErrInvalidMode        = errors.New("config: mode must be 1P or 2P")
	ErrUnknownDifficulty  = errors.New("config: unknown difficulty")
	ErrUnknownPersonality = errors.New("config: unknown personality")
	ErrUnknownColor       = errors.New("config: unknown theme color")
	ErrInvalidTunable     = errors.New("config: invalid tunable")
)

// Settings is the player-facing configuration. Only Mode and Difficulty
// affect the simulation; Color is for rendering and Personality for
// commentary.
type Settings struct {
	Mode        Mode
	Difficulty  DifficultyPreset
	Color       string
	Personality Personality
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		Mode:        Mode1P,
		Difficulty:  DifficultyMedium,
		Color:       "cyan",
		Personality: PersonalitySarcastic,
	}
}

// Validate checks every field against the known values.
func (s Settings) Validate() error {
	switch s.Mode {
	case Mode1P, Mode2P:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, s.Mode)
	}

	switch s.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDifficulty, s.Difficulty)
	}

	switch s.Personality {
	case PersonalityEnthusiastic, PersonalitySarcastic, PersonalityNeutral:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPersonality, s.Personality)
	}

	for _, c := range ThemeColors {
		if c == s.Color {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownColor, s.Color)
}

// RightIsAI reports whether the right paddle is driven by the opponent controller.
func (s Settings) RightIsAI() bool {
	return s.Mode == Mode1P
}
