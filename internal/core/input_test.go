package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionLeft)
	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("Expected Up and Left to be set")
	}

	var zero InputFrame
	if zero.Has(ActionDown) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionDown)
	if !zero.Has(ActionDown) {
		t.Error("Set on zero frame should allocate the map")
	}
}

func TestInputFrameClearKeepsMouse(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Mouse = Pt(12, 3)
	f.Press(ButtonDown)
	f.Press(ButtonUp)

	f.Clear()

	if f.Has(ActionRight) {
		t.Error("Clear should drop actions")
	}
	if len(f.Buttons) != 0 {
		t.Errorf("Clear should drop button transitions, got %v", f.Buttons)
	}
	if f.Mouse != Pt(12, 3) {
		t.Errorf("Clear should keep mouse position, got %v", f.Mouse)
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
