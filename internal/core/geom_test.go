package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		name                  string
		val, target, step, ok int
	}{
		{"forward by step", 0, 56, 14, 14},
		{"backward by step", 56, 0, 14, 42},
		{"clamps forward overshoot", 50, 56, 14, 56},
		{"clamps backward overshoot", 6, 0, 14, 0},
		{"already there", 56, 56, 14, 56},
		{"zero step is a no-op", 0, 56, 0, 0},
		{"negative step is a no-op", 0, 56, -3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StepToward(tc.val, tc.target, tc.step); got != tc.ok {
				t.Errorf("StepToward(%d, %d, %d) = %d, expected %d", tc.val, tc.target, tc.step, got, tc.ok)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
