package core

// Action is a platform-level intent decoded from a key press.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // held: run left
	ActionRight          // held: run right
	ActionUp             // held: jump when grounded
	ActionDown           // held: sampled, the platformer ignores it
	ActionRestart        // trigger: new run after game over
	ActionQuit           // trigger: leave the session
	ActionPause          // trigger: toggle pause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Up", "Down", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one tick. Directions mean
// "held this tick"; the other actions are one-shot triggers. The zero value
// is an empty frame and frames are plain values, so copies are independent.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks a as active. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && a < actionCount {
		f.bits |= 1 << a
	}
}

// Has reports whether a is active.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && a < actionCount && f.bits&(1<<a) != 0
}

// Directions splits out the four held directions.
func (f InputFrame) Directions() (left, right, up, down bool) {
	return f.Has(ActionLeft), f.Has(ActionRight), f.Has(ActionUp), f.Has(ActionDown)
}

// Empty reports whether no action is active.
func (f InputFrame) Empty() bool { return f.bits == 0 }

// Clear removes every action.
func (f *InputFrame) Clear() { f.bits = 0 }

// Clone returns a copy of f.
func (f InputFrame) Clone() InputFrame { return f }
