package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow
	ActionDown         // S, Down arrow
	ActionLeft         // A, Left arrow
	ActionRight        // D, Right arrow
	ActionBack         // Escape - go back to menu
	ActionQuit         // Q, Ctrl+C - exit the program
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
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ButtonEvent is a mouse button transition.
type ButtonEvent int

const (
	ButtonDown ButtonEvent = iota
	ButtonUp
)

// String returns a human-readable name for the transition.
func (b ButtonEvent) String() string {
	if b == ButtonDown {
		return "down"
	}
	return "up"
}

// InputFrame is the input snapshot a game sees for one rendered frame.
type InputFrame struct {
	// Actions holds every action triggered since the previous frame.
	Actions map[Action]bool

	// Mouse is the last known pointer position in surface coordinates.
	// It persists across frames; Clear does not reset it.
	Mouse Point

	// Buttons lists mouse button transitions in arrival order.
	Buttons []ButtonEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Mouse:   Point{X: -1, Y: -1},
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

// Press appends a mouse button transition.
func (f *InputFrame) Press(b ButtonEvent) {
	f.Buttons = append(f.Buttons, b)
}

// Clear resets actions and button transitions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Buttons = f.Buttons[:0]
}
