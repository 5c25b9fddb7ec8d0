package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionFire           // Space, W, Up - fire a bullet (press-edge)
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionFire:
		return "Fire"
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

// KeyState is the kind of transition reported by a key event.
type KeyState int

const (
	KeyPress   KeyState = iota // released -> pressed
	KeyRepeat                  // still held (auto-repeat)
	KeyRelease                 // pressed -> released
)

// KeyEvent is a discrete key transition delivered within one tick's batch.
type KeyEvent struct {
	Action Action
	State  KeyState
}

// IsPress reports whether the event is a press-edge for the given action.
func (e KeyEvent) IsPress(a Action) bool {
	return e.Action == a && e.State == KeyPress
}

// InputFrame represents the input for a single simulation tick.
// Actions holds the continuous held state (or one-shot triggers such as
// pause); Events holds this tick's discrete key transitions in arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Events  []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Push appends a key transition to this frame's batch.
func (f *InputFrame) Push(ev KeyEvent) {
	f.Events = append(f.Events, ev)
}

// Press is shorthand for pushing a press-edge of the given action.
func (f *InputFrame) Press(a Action) {
	f.Push(KeyEvent{Action: a, State: KeyPress})
}

// Clear resets all actions and drops the event batch for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
}
