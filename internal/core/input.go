package core

// Action is a semantic input intent, decoupled from the key or gesture
// that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K, swipe up
	ActionDown           // Down arrow, S, J, swipe down
	ActionLeft           // Left arrow, A, H, swipe left
	ActionRight          // Right arrow, D, L, swipe right
	ActionConfirm        // Enter
	ActionBack           // Escape
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Space
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action expresses a movement intent.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// InputFrame collects the actions triggered between two host frames.
// Directions keep arrival order so the last one can win.
type InputFrame struct {
	Actions    map[Action]bool
	Directions []Action
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
	if a.IsDirection() {
		f.Directions = append(f.Directions, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// LastDirection returns the most recent movement action of the frame.
func (f InputFrame) LastDirection() (Action, bool) {
	if len(f.Directions) == 0 {
		return ActionNone, false
	}
	return f.Directions[len(f.Directions)-1], true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Directions = f.Directions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Directions = append([]Action(nil), f.Directions...)
	return clone
}
