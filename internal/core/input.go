package core

// Action represents a semantic game action, abstracted from physical key
// presses. The UI maps keys to actions; the game consumes actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W
	ActionDown           // Down arrow, S
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionPause          // P, Escape - pause/resume
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - handled by the runner, never by the game
	ActionConfirm        // Enter
	ActionLevel1         // 1 - select difficulty level 1
	ActionLevel2         // 2 - select difficulty level 2
	ActionLevel3         // 3 - select difficulty level 3
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionLevel1:
		return "Level1"
	case ActionLevel2:
		return "Level2"
	case ActionLevel3:
		return "Level3"
	default:
		return "Unknown"
	}
}
