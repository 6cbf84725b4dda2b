package core

// Action represents a semantic input action, abstracted from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - nudge left paddle target up
	ActionLeftDown         // S - nudge left paddle target down
	ActionRightUp          // Up arrow - nudge right paddle target up (2P)
	ActionRightDown        // Down arrow - nudge right paddle target down (2P)
	ActionToggle           // Space - start / pause / resume / replay
	ActionReset            // R - reset match
	ActionQuit             // Q, Ctrl+C - exit
	ActionMode             // M - switch between 1P and 2P
	ActionDifficulty       // D - cycle difficulty
	ActionColor            // C - cycle theme color
	ActionPersonality      // V - cycle commentary voice
	ActionScreenshot       // Ctrl+S - save the current frame as text
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionToggle:
		return "Toggle"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionMode:
		return "Mode"
	case ActionDifficulty:
		return "Difficulty"
	case ActionColor:
		return "Color"
	case ActionPersonality:
		return "Personality"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame represents the held actions for one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
