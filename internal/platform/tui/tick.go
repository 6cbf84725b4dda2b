// Package tui hosts a match in the terminal with Bubble Tea. It maps keys and
// mouse motion onto the input surface, drives the match clock from tick
// messages and renders snapshots with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-paddle/internal/core"
)

// TickMsg is sent to trigger a match tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the configured rate.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
