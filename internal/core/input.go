package core

// Action is a player intent, decoupled from the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Move the paddle left
	ActionRight          // Move the paddle right
	ActionLaunch         // Release the ball from the paddle
	ActionConfirm        // Advance after a cleared level
	ActionBack           // Pause, or leave a finished run
	ActionRestart        // Start over after game over
	ActionQuit           // Leave the program
	ActionPause          // Toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Launch", "Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the player's input for one simulation tick.
type InputFrame struct {
	pressed uint32 // Bit per Action

	// Movement is the horizontal axis in [-1, 1]; negative moves left.
	Movement float64

	// PointerX is the cursor position in world units, valid when HasPointer is set.
	PointerX   float64
	HasPointer bool
}

// NewInputFrame returns a frame with nothing pressed.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as pressed this tick. Unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.pressed |= 1 << a
	}
}

// Has reports whether a was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.pressed&(1<<a) != 0
}

// Pressed returns the pressed actions in ascending order.
func (f InputFrame) Pressed() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// SetMovement sets the horizontal axis, clamped to [-1, 1].
func (f *InputFrame) SetMovement(m float64) {
	f.Movement = ClampF(m, -1, 1)
}

// SetPointer records the cursor x position in world units.
func (f *InputFrame) SetPointer(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = InputFrame{}
}

// Clone returns a copy of the frame. Frames hold no references, so this is
// a plain value copy.
func (f InputFrame) Clone() InputFrame {
	return f
}
