package core

// Action is a semantic input event, abstracted from keys, clicks and touches.
type Action int

const (
	ActionNone        Action = iota
	ActionJumpOrStart        // Space, Up, Enter, click, tap
	ActionRestart            // R
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJumpOrStart:
		return "JumpOrStart"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
