package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-paddle/internal/core"
)

// KeyMapper translates Bubble Tea key messages to match actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "W":
		return core.ActionLeftUp, false
	case "s", "S":
		return core.ActionLeftDown, false
	case "up":
		return core.ActionRightUp, false
	case "down":
		return core.ActionRightDown, false
	case " ":
		return core.ActionToggle, false
	case "r", "R":
		return core.ActionReset, false
	case "m":
		return core.ActionMode, false
	case "d":
		return core.ActionDifficulty, false
	case "c":
		return core.ActionColor, false
	case "v":
		return core.ActionPersonality, false
	case "ctrl+s":
		return core.ActionScreenshot, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
