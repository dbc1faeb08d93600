package core

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions and actions to game commands.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move paddle left
	ActionRight          // Right arrow, D, L - move paddle right
	ActionConfirm        // Enter - restart after the run ends
	ActionBack           // Esc - abandon the run / back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionOther          // Any other key; starts a fresh game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionOther:
		return "Other"
	default:
		return "Unknown"
	}
}
