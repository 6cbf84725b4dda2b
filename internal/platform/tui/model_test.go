package tui

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/core"
	"github.com/vovakirdan/neon-paddle/internal/match"
	"github.com/vovakirdan/neon-paddle/internal/session"
)

func newTestModel(t *testing.T, settings config.Settings) Model {
	t.Helper()
	deps := session.Deps{Config: config.DefaultPaddleConfig()}
	s, err := session.New(context.Background(), "test", "tester", deps, settings, 42)
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	t.Cleanup(s.Close)

	m := NewModel(s, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	m.screenshotDir = t.TempDir()
	return m
}

// send feeds msgs through Update in order and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func tick() tea.Msg {
	return TickMsg(time.Now())
}

func TestModelToggleAndReset(t *testing.T) {
	m := newTestModel(t, config.DefaultSettings())
	d := m.session.Driver()

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, tick())
	if d.State().Status != match.StatusPlaying {
		t.Fatalf("status = %v, expected PLAYING", d.State().Status)
	}

	send(t, m, runeKey('r'), tick())
	if d.State().Status != match.StatusStart {
		t.Errorf("status after reset = %v, expected START", d.State().Status)
	}
}

func TestModelKeyNudges(t *testing.T) {
	tests := []struct {
		name      string
		mode      config.Mode
		key       tea.KeyMsg
		wantLeft  float64
		wantRight float64
	}{
		{"w moves left up", config.Mode1P, runeKey('w'), 238, 250},
		{"s moves left down", config.Mode2P, runeKey('s'), 262, 250},
		{"arrows steer left in 1P", config.Mode1P, tea.KeyMsg{Type: tea.KeyUp}, 238, 250},
		{"arrows steer right in 2P", config.Mode2P, tea.KeyMsg{Type: tea.KeyDown}, 250, 262},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := config.DefaultSettings()
			settings.Mode = tt.mode
			m := newTestModel(t, settings)

			m = send(t, m, tt.key, tick())
			in := m.session.Driver().Engine().Input()
			if in.LeftTarget != tt.wantLeft || in.RightTarget != tt.wantRight {
				t.Errorf("targets = (%v, %v), expected (%v, %v)", in.LeftTarget, in.RightTarget, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestModelPointerMapsToArena(t *testing.T) {
	m := newTestModel(t, config.DefaultSettings())

	// Inner arena at 80x24 starts at (14, 2) and is 51x16 cells.
	m = send(t, m, tea.MouseMsg{X: 30, Y: 10, Action: tea.MouseActionMotion})

	got := m.session.Driver().Engine().Input().LeftTarget
	want := 8.5 * 500.0 / 16.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("LeftTarget = %v, expected %v", got, want)
	}
}

func TestModelCyclesSettings(t *testing.T) {
	m := newTestModel(t, config.DefaultSettings())

	m = send(t, m, runeKey('m'), runeKey('d'), runeKey('c'), runeKey('v'), tick())

	got := m.session.Driver().Settings()
	want := config.Settings{
		Mode:        config.Mode2P,
		Difficulty:  config.DifficultyHard,
		Color:       "pink",
		Personality: config.PersonalityNeutral,
	}
	if got != want {
		t.Errorf("settings = %+v, expected %+v", got, want)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultSettings())

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce QuitMsg")
	}
	if v := next.(Model).View(); v != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, config.DefaultSettings())

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
}

func TestModelViewRenders(t *testing.T) {
	m := newTestModel(t, config.DefaultSettings())
	if m.View() == "" {
		t.Error("View should render the arena")
	}
}

func TestCycle(t *testing.T) {
	values := []string{"a", "b", "c"}
	tests := []struct {
		cur, want string
	}{
		{"a", "b"},
		{"c", "a"},
		{"zzz", "a"},
	}
	for _, tt := range tests {
		if got := cycle(values, tt.cur); got != tt.want {
			t.Errorf("cycle(%q) = %q, expected %q", tt.cur, got, tt.want)
		}
	}
}
