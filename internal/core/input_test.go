package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionUp) {
		t.Fatal("empty frame should not have ActionUp")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("frame should have ActionUp after Set")
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("frame should be empty after Clear")
	}
	if got := f.Latest(ActionUp); got != ActionNone {
		t.Errorf("Latest() after Clear = %v, expected None", got)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should not have actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("zero frame should accept Set")
	}
}

func TestInputFrameLatest(t *testing.T) {
	dirs := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}

	tests := []struct {
		name     string
		sequence []Action
		expected Action
	}{
		{"no input", nil, ActionNone},
		{"single", []Action{ActionLeft}, ActionLeft},
		{"last wins", []Action{ActionUp, ActionRight}, ActionRight},
		{"non-direction ignored", []Action{ActionDown, ActionPause}, ActionDown},
		{"repeat moves to end", []Action{ActionUp, ActionLeft, ActionUp}, ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.sequence {
				f.Set(a)
			}
			if got := f.Latest(dirs...); got != tc.expected {
				t.Errorf("Latest() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Clear()

	if f.Has(ActionUp) || f.Has(ActionLeft) {
		t.Error("Clear() should drop every action")
	}
	if got := f.Latest(ActionUp, ActionLeft); got != ActionNone {
		t.Errorf("Latest() after Clear() = %v, expected None", got)
	}

	f.Set(ActionDown)
	if got := f.Latest(ActionUp, ActionDown); got != ActionDown {
		t.Errorf("Latest() after reuse = %v, expected Down", got)
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
