//go:build mazedebug

package maze

import "testing"

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestCarvePreconditionViolationsPanic(t *testing.T) {
	g, err := NewGrid(2, 2)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	mustPanic(t, "carve off the grid", func() { g.Carve(C(0, 0), Top) })

	if !g.Carve(C(0, 0), Right) {
		t.Fatal("Carve failed")
	}
	mustPanic(t, "carve into visited cell", func() { g.Carve(C(0, 0), Right) })
}
