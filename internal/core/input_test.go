package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionUp)

	left, right, up, down := f.Directions()
	if !left || right || !up || down {
		t.Errorf("Directions() = (%v, %v, %v, %v), expected (true, false, true, false)", left, right, up, down)
	}
	if f.Has(ActionPause) {
		t.Error("Pause should not be set")
	}
}

func TestNewInputFrameWithActions(t *testing.T) {
	f := NewInputFrame(ActionRight, ActionPause)

	if !f.Has(ActionRight) || !f.Has(ActionPause) {
		t.Errorf("frame should hold Right and Pause")
	}
	if f.Has(ActionLeft) {
		t.Error("Left should not be set")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionLeft) {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionRight)
	if !f.Has(ActionRight) || f.Empty() {
		t.Error("Set on zero frame should record the action")
	}
}

func TestInputFrameIgnoresInvalidActions(t *testing.T) {
	var f InputFrame
	f.Set(ActionNone)
	f.Set(Action(-1))
	f.Set(Action(42))

	if !f.Empty() {
		t.Errorf("invalid actions should be ignored")
	}
	if f.Has(ActionNone) || f.Has(Action(42)) {
		t.Error("Has should be false for invalid actions")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionRight) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionRight) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionUp, "Up"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
		{Action(-3), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}
