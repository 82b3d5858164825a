package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionRestart)
	if !f.Has(ActionLeft) || !f.Has(ActionRestart) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionQuit) // Should not panic on nil map
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()

	if _, _, ok := f.Pointer(); ok {
		t.Error("New frame should have no pointer")
	}

	f.SetPointer(120, 40)
	f.SetPointer(130, 45) // latest wins
	x, y, ok := f.Pointer()
	if !ok || x != 130 || y != 45 {
		t.Errorf("Pointer() = (%v, %v, %v), expected (130, 45, true)", x, y, ok)
	}

	f.Clear()
	if _, _, ok := f.Pointer(); ok {
		t.Error("Clear should drop the pointer")
	}
}

func TestPaddleXForPointer(t *testing.T) {
	const surfaceW, paddleW = 800.0, 100.0

	tests := []struct {
		name     string
		pointer  float64
		expected float64
	}{
		{"centered under pointer", 400, 350},
		{"clamped at left wall", 10, 0},
		{"clamped at right wall", 790, 700},
		{"exactly at right limit", 750, 700},
		{"negative pointer", -50, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PaddleXForPointer(tc.pointer, surfaceW, paddleW)
			if got != tc.expected {
				t.Errorf("PaddleXForPointer(%v) = %v, expected %v", tc.pointer, got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionFullscreen.String() != "Fullscreen" {
		t.Errorf("ActionFullscreen.String() = %q", ActionFullscreen.String())
	}
	if Action(999).String() != "Unknown" {
		t.Errorf("Action(999).String() = %q", Action(999).String())
	}
}
