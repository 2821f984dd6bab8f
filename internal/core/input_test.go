package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Has(Jump) should be true after Set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestInputFrameHorizontal(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both cancel", []Action{ActionLeft, ActionRight}, 0},
		{"jump only", []Action{ActionJump}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame(tc.actions...)
			if got := f.Horizontal(); got != tc.expected {
				t.Errorf("Horizontal() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionInfo.String() != "Info" {
		t.Errorf("ActionInfo.String() = %q", ActionInfo.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
