package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-paddle/internal/config"
	"github.com/vovakirdan/neon-paddle/internal/core"
	"github.com/vovakirdan/neon-paddle/internal/session"
	"github.com/vovakirdan/neon-paddle/internal/sim"
)

// Model is the Bubble Tea model hosting one match.
type Model struct {
	session       *session.Session
	screen        *core.Screen
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	inputFrame    core.InputFrame
	lastTick      time.Time
	screenshotDir string
	quitting      bool
}

// NewModel creates a Bubble Tea model for the session's match.
func NewModel(s *session.Session, cfg core.RuntimeConfig) Model {
	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".paddle", "screenshots")
	}

	return Model{
		session:       s,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		inputFrame:    core.NewInputFrame(),
		screenshotDir: dir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit and screenshots act
// immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionScreenshot) {
		m.saveScreenshot()
	}
	return m, nil
}

// handleMouse maps pointer motion from terminal cells to arena coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	d := m.session.Driver()
	snap := d.Snapshot()
	in := computeLayout(m.screen.Width(), m.screen.Height(), snap.ArenaW, snap.ArenaH).inner()
	if !in.Contains(msg.X, msg.Y) {
		return m, nil
	}

	// Aim at the middle of the cell under the pointer.
	x := sim.MapPointer(float64(msg.X)+0.5, float64(in.X), float64(in.W), snap.ArenaW)
	y := sim.MapPointer(float64(msg.Y)+0.5, float64(in.Y), float64(in.H), snap.ArenaH)
	d.Engine().Point(d.Settings().Mode, x, y)
	return m, nil
}

// handleTick applies the buffered input and advances the match by the
// wall-clock time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.config.TickInterval()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.applyFrame()
	m.session.Driver().Tick(elapsed)
	m.inputFrame.Clear()

	return m, tickCmd(m.config)
}

// applyFrame turns the buffered actions into driver and input calls.
func (m *Model) applyFrame() {
	d := m.session.Driver()
	settings := d.Settings()

	// In 1P the arrows steer the human paddle too.
	arrows := sim.SideRight
	if settings.Mode == config.Mode1P {
		arrows = sim.SideLeft
	}

	nudges := []struct {
		action core.Action
		side   sim.Side
		steps  float64
	}{
		{core.ActionLeftUp, sim.SideLeft, -1},
		{core.ActionLeftDown, sim.SideLeft, 1},
		{core.ActionRightUp, arrows, -1},
		{core.ActionRightDown, arrows, 1},
	}
	for _, n := range nudges {
		if m.inputFrame.Has(n.action) {
			d.Engine().Nudge(n.side, n.steps)
		}
	}

	switch {
	case m.inputFrame.Has(core.ActionReset):
		d.Reset()
	case m.inputFrame.Has(core.ActionToggle):
		d.Toggle()
	}

	next := settings
	if m.inputFrame.Has(core.ActionMode) {
		next.Mode = cycle([]config.Mode{config.Mode1P, config.Mode2P}, next.Mode)
	}
	if m.inputFrame.Has(core.ActionDifficulty) {
		next.Difficulty = cycle([]config.DifficultyPreset{
			config.DifficultyEasy, config.DifficultyMedium, config.DifficultyHard,
		}, next.Difficulty)
	}
	if m.inputFrame.Has(core.ActionColor) {
		next.Color = cycle(config.ThemeColors, next.Color)
	}
	if m.inputFrame.Has(core.ActionPersonality) {
		next.Personality = cycle([]config.Personality{
			config.PersonalityEnthusiastic, config.PersonalitySarcastic, config.PersonalityNeutral,
		}, next.Personality)
	}
	if next != settings {
		//nolint:errcheck // Cycled values are always valid
		m.session.SetSettings(next)
	}
}

// cycle returns the element after cur, wrapping around. Unknown values
// restart at the first element.
func cycle[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

// frame collects what the next View shows.
func (m Model) frame() Frame {
	d := m.session.Driver()
	return Frame{
		Snapshot: d.Snapshot(),
		State:    d.State(),
		Settings: d.Settings(),
		Feed:     m.session.Feed(),
	}
}

// saveScreenshot saves the current frame as plain text.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	DrawFrame(m.screen, m.frame())

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("paddle_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, match continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.frame())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local match.
func Run(s *session.Session, cfg core.RuntimeConfig) error {
	model := NewModel(s, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer steers the paddle like a mouse hover
	)

	_, err := p.Run()
	return err
}
