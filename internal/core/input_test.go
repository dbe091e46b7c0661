package core

import "testing"

func TestInputFrameCounts(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Set(ActionNone)

	if got := f.Count(ActionLeft); got != 2 {
		t.Errorf("Count(Left) = %d, expected 2", got)
	}
	if !f.Has(ActionPause) {
		t.Error("Has(Pause) should be true")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) should be false")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) || !f.Empty() {
		t.Error("zero frame should be empty")
	}
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionUp) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionIsMove(t *testing.T) {
	moves := map[Action]bool{
		ActionLeft:  true,
		ActionRight: true,
		ActionUp:    true,
		ActionDown:  true,
		ActionStart: false,
		ActionPause: false,
		ActionQuit:  false,
		ActionNone:  false,
	}
	for a, want := range moves {
		if got := a.IsMove(); got != want {
			t.Errorf("%s.IsMove() = %v, expected %v", a, got, want)
		}
	}
}
