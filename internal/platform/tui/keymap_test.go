package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-paddle/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"w", runeKey('w'), core.ActionLeftUp, false},
		{"shift w", runeKey('W'), core.ActionLeftUp, false},
		{"s", runeKey('s'), core.ActionLeftDown, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRightUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionRightDown, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionToggle, false},
		{"r", runeKey('r'), core.ActionReset, false},
		{"m", runeKey('m'), core.ActionMode, false},
		{"d", runeKey('d'), core.ActionDifficulty, false},
		{"c", runeKey('c'), core.ActionColor, false},
		{"v", runeKey('v'), core.ActionPersonality, false},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := km.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('w'), &frame) {
		t.Error("w should not quit")
	}
	km.MapKeyToFrame(runeKey('z'), &frame)

	if !frame.Has(core.ActionLeftUp) {
		t.Error("frame should hold LeftUp")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not be recorded")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
}
