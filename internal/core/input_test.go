package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionRight)
	f.Set(ActionRight)
	if !f.Has(ActionRight) {
		t.Error("Has(Right) should be true after Set")
	}
	if len(f.Actions) != 1 {
		t.Errorf("repeated Set should collapse, got %d actions", len(f.Actions))
	}

	f.Clear()
	if f.Has(ActionRight) {
		t.Error("Clear should remove actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameOrdered(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionQuit)
	f.Set(ActionLeft)
	f.Set(ActionStart)

	got := f.Ordered()
	want := []Action{ActionLeft, ActionStart, ActionQuit}
	if len(got) != len(want) {
		t.Fatalf("Ordered() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestActionDirectional(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirectional() {
			t.Errorf("%v should be directional", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionStart, ActionRestart, ActionQuit} {
		if a.IsDirectional() {
			t.Errorf("%v should not be directional", a)
		}
	}
	if Action(99).String() != "Unknown" {
		t.Error("out-of-range action should stringify as Unknown")
	}
}
