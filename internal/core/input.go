package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionPause            // P
	ActionRestart          // R, after the game has ended
	ActionAutopilot        // Tab, toggles the autopilot
	ActionQuit             // Q, Ctrl+C
)

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
	case ActionAutopilot:
		return "Autopilot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction maps a movement action to its direction.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return Up, true
	case ActionDown:
		return Down, true
	case ActionLeft:
		return Left, true
	case ActionRight:
		return Right, true
	}
	return 0, false
}

// InputFrame is the input collected between two ticks. It remembers the
// first movement key only, so at most one key event reaches the game per
// tick.
type InputFrame struct {
	actions map[Action]bool
	move    Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{actions: make(map[Action]bool)}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	if _, ok := a.Direction(); ok {
		if f.move == ActionNone {
			f.move = a
		}
		return
	}
	f.actions[a] = true
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a != ActionNone && a == f.move {
		return true
	}
	return f.actions[a]
}

// Move returns the movement key of this frame, if any.
func (f InputFrame) Move() (Direction, bool) {
	return f.move.Direction()
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.actions)
	f.move = ActionNone
}
