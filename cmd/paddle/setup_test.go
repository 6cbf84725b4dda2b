package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/neon-paddle/internal/config"
)

func TestSettingsFromFlags(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		diff    string
		voice   string
		color   string
		wantErr error
	}{
		{"defaults", "1P", "medium", "sarcastic", "cyan", nil},
		{"two player", "2P", "hard", "neutral", "green", nil},
		{"bad mode", "3P", "medium", "sarcastic", "cyan", config.ErrInvalidMode},
		{"bad difficulty", "1P", "insane", "sarcastic", "cyan", config.ErrUnknownDifficulty},
		{"bad voice", "1P", "easy", "grumpy", "cyan", config.ErrUnknownPersonality},
		{"bad color", "1P", "easy", "neutral", "mauve", config.ErrUnknownColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := settingsFromFlags(tt.mode, tt.diff, tt.voice, tt.color)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, expected %v", err, tt.wantErr)
			}
			if err == nil && string(s.Mode) != tt.mode {
				t.Errorf("mode = %s, expected %s", s.Mode, tt.mode)
			}
		})
	}
}

func TestSeedHonoursFlag(t *testing.T) {
	old := flagSeed
	t.Cleanup(func() { flagSeed = old })

	flagSeed = 99
	if got := seed(); got != 99 {
		t.Errorf("seed() = %d, expected 99", got)
	}
	flagSeed = 0
	if seed() == 0 {
		t.Error("seed() should pick a time-based seed when the flag is 0")
	}
}
