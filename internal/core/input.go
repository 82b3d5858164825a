package core

// Action represents a semantic input action, abstracted from physical keys.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - nudge paddle left
	ActionRight             // D, Right arrow - nudge paddle right
	ActionRestart           // R - restart after a terminal state
	ActionFullscreen        // F - toggle full screen (window frontend)
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionRestart:
		return "Restart"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received between two simulation ticks.
// Pointer holds the latest pointer position in surface coordinates; only the
// most recent position matters, earlier motion events are overwritten.
type InputFrame struct {
	Actions map[Action]bool

	pointerX, pointerY float64
	pointerSet         bool
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

// SetPointer records the pointer position in surface coordinates.
func (f *InputFrame) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.pointerSet = true
}

// Pointer returns the last recorded pointer position and whether one was
// recorded this frame.
func (f InputFrame) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.pointerSet
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.pointerSet = false
}

// PaddleXForPointer converts a pointer x coordinate into the left edge of a
// paddle centered under the pointer, clamped to [0, surfaceW-paddleW].
func PaddleXForPointer(pointerX, surfaceW, paddleW float64) float64 {
	return ClampPaddleX(pointerX-paddleW/2, surfaceW, paddleW)
}

// ClampPaddleX keeps a paddle left edge inside the surface.
func ClampPaddleX(x, surfaceW, paddleW float64) float64 {
	return ClampF(x, 0, surfaceW-paddleW)
}
