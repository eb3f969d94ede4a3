package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions so the simulation never sees
// raw input events.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, W - upward impulse; also starts a round
	ActionPause          // P, Esc - pause/resume toggle (Playing/Paused only)
	ActionRestart        // R - restart after game over
	ActionMute           // M - mute toggle, forwarded to audio/persistence only
	ActionConfirm        // Enter - confirm in menus/prompts
	ActionBack           // B - back to previous screen
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered since the previous tick;
// the platform clears it after each Step, so actions interleave atomically
// between frames and never mutate state mid-update.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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
