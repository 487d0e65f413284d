package game

import (
	"testing"

	"github.com/vovakirdan/mazerunner/internal/maze"
)

func newClosedGrid(t *testing.T, w, h int) *maze.Grid {
	t.Helper()
	g, err := maze.NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
	}
	return g
}

func TestTryMoveRejectsWalls(t *testing.T) {
	g := newClosedGrid(t, 3, 3)
	p := NewPlayer(maze.C(1, 1), DefaultGeometry())

	for _, d := range maze.Directions {
		if p.TryMove(g, d) {
			t.Errorf("TryMove(%v) accepted in a closed cell", d)
		}
	}
	if p.Target != maze.C(1, 1) {
		t.Errorf("Target moved to %v, want (1,1)", p.Target)
	}
}

func TestTryMoveBounds(t *testing.T) {
	g := newClosedGrid(t, 2, 1)
	g.Carve(maze.C(0, 0), maze.Right)

	p := NewPlayer(maze.C(0, 0), DefaultGeometry())
	if p.TryMove(g, maze.Left) {
		t.Error("TryMove(Left) accepted off the grid")
	}
	if p.TryMove(g, maze.Top) {
		t.Error("TryMove(Top) accepted off the grid")
	}
	if !p.TryMove(g, maze.Right) {
		t.Fatal("TryMove(Right) rejected through an open passage")
	}
	if p.Target != maze.C(1, 0) {
		t.Errorf("Target = %v, want (1,0)", p.Target)
	}
}

func TestTryMoveIgnoredWhileTransitioning(t *testing.T) {
	g := newClosedGrid(t, 3, 1)
	g.Carve(maze.C(0, 0), maze.Right)
	g.Carve(maze.C(1, 0), maze.Right)
	geom := DefaultGeometry()

	p := NewPlayer(maze.C(0, 0), geom)
	if !p.TryMove(g, maze.Right) {
		t.Fatal("first move rejected")
	}
	p.Advance(geom)
	if p.Idle() {
		t.Fatal("player idle after one partial step")
	}
	if p.TryMove(g, maze.Right) {
		t.Error("move accepted while transitioning")
	}
	if p.Target != maze.C(1, 0) {
		t.Errorf("Target = %v, want (1,0)", p.Target)
	}
}

func TestAdvanceConverges(t *testing.T) {
	tests := []struct {
		name  string
		geom  Geometry
		dir   maze.Direction
		ticks int
	}{
		{"default right", DefaultGeometry(), maze.Right, 4},
		{"default down", DefaultGeometry(), maze.Bottom, 4},
		{"non dividing step", Geometry{CellSize: 48, Border: 8, Step: 15}, maze.Right, 4},
		{"step larger than span", Geometry{CellSize: 10, Border: 2, Step: 100}, maze.Bottom, 1},
		{"unit step", Geometry{CellSize: 3, Border: 1, Step: 1}, maze.Right, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newClosedGrid(t, 2, 2)
			g.Carve(maze.C(0, 0), tt.dir)

			p := NewPlayer(maze.C(0, 0), tt.geom)
			if !p.TryMove(g, tt.dir) {
				t.Fatalf("TryMove(%v) rejected", tt.dir)
			}
			dest := tt.geom.PixelOf(p.Target)

			for i := 1; i <= tt.ticks; i++ {
				p.Advance(tt.geom)
				if p.Pos.X > dest.X || p.Pos.Y > dest.Y {
					t.Fatalf("tick %d overshot: pos=%v dest=%v", i, p.Pos, dest)
				}
				if i < tt.ticks && p.Idle() {
					t.Fatalf("arrived early at tick %d", i)
				}
			}

			if !p.Idle() {
				t.Fatalf("not idle after %d ticks: current=%v target=%v", tt.ticks, p.Current, p.Target)
			}
			if p.Pos != dest {
				t.Errorf("Pos = %v, want %v", p.Pos, dest)
			}
		})
	}
}

func TestAdvanceIdleIsNoop(t *testing.T) {
	geom := DefaultGeometry()
	p := NewPlayer(maze.C(2, 3), geom)
	before := p

	for range 10 {
		p.Advance(geom)
	}
	if p != before {
		t.Errorf("idle Advance changed player: got %+v, want %+v", p, before)
	}
}

func TestGeometryValidate(t *testing.T) {
	tests := []struct {
		geom    Geometry
		wantErr bool
	}{
		{DefaultGeometry(), false},
		{Geometry{CellSize: 1, Border: 0, Step: 1}, false},
		{Geometry{CellSize: 0, Border: 8, Step: 14}, true},
		{Geometry{CellSize: 48, Border: -1, Step: 14}, true},
		{Geometry{CellSize: 48, Border: 8, Step: 0}, true},
	}

	for _, tt := range tests {
		err := tt.geom.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.geom, err, tt.wantErr)
		}
	}
}
