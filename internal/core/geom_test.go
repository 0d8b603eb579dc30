package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 2, 10, 4)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, want 13", r.Right())
	}
	if r.Bottom() != 6 {
		t.Errorf("Bottom() = %d, want 6", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, want float64
	}{
		{-3, -1},
		{-1, -1},
		{0.25, 0.25},
		{1, 1},
		{7, 1},
	}
	for _, tt := range tests {
		if got := ClampF(tt.val, -1, 1); got != tt.want {
			t.Errorf("ClampF(%v, -1, 1) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestMovementIsClamped(t *testing.T) {
	f := NewInputFrame()
	f.SetMovement(-2.5)
	if f.Movement != -1 {
		t.Errorf("Movement = %v, want -1", f.Movement)
	}
	f.SetPointer(120)
	f.Set(ActionLaunch)
	f.Clear()
	if f.Movement != 0 || f.HasPointer || f.Has(ActionLaunch) {
		t.Errorf("Clear() left %+v", f)
	}
}
