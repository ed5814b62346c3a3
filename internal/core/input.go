package core

// Action represents a logical control, abstracted from physical keys,
// touch buttons and pointer presses.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A, on-screen ◀
	ActionRight             // Right arrow, D, on-screen ▶
	ActionJump              // Space, Up, W, on-screen ▲
	ActionAny               // Any other key; only counts as an interaction
	ActionQuit              // Q, Ctrl+C
	ActionScreenshot        // Ctrl+S
	ActionBack              // Esc, back to the level menu
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
	case ActionJump:
		return "Jump"
	case ActionAny:
		return "Any"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action drives the player's intent record.
func (a Action) IsMovement() bool {
	return a == ActionLeft || a == ActionRight || a == ActionJump
}
