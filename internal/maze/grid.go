// Package maze holds the cell/wall model of a rectangular maze and the
// randomized depth-first generator that carves it into a perfect maze.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimension is returned when a grid is requested with a
// non-positive width or height, or with more than MaxCells cells.
var ErrInvalidDimension = errors.New("maze: invalid grid dimension")

// MaxCells bounds width*height of a single grid.
const MaxCells = 1 << 22

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Step returns the coordinate one step away in the given direction.
// The result may lie outside any grid.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell is one grid position. Walls are indexed by Direction.
type Cell struct {
	Pos     Coord
	Walls   [4]bool // true means the wall is present
	Visited bool    // generation bookkeeping only
}

// HasWall reports whether the wall on side d is present.
func (c Cell) HasWall(d Direction) bool {
	if !d.Valid() {
		return true
	}
	return c.Walls[d]
}

// Closed reports whether all four walls are present.
func (c Cell) Closed() bool {
	return c.Walls == [4]bool{true, true, true, true}
}

// Grid is a fixed-size rectangle of cells stored in row-major order.
// The zero value is an empty 0x0 grid; call Reset before use.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid returns a fully walled width x height grid.
func NewGrid(width, height int) (*Grid, error) {
	g := &Grid{}
	if err := g.Reset(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset resizes the grid to width x height and restores every cell to
// fully walled and unvisited. Backing storage is reused when it is large
// enough. On error the grid is left exactly as it was.
func (g *Grid) Reset(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}

	n := width * height
	if cap(g.cells) >= n {
		g.cells = g.cells[:n]
	} else {
		g.cells = make([]Cell, n)
	}
	g.w, g.h = width, height

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[y*width+x] = Cell{
				Pos:   Coord{X: x, Y: y},
				Walls: [4]bool{true, true, true, true},
			}
		}
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return g.w * g.h }

// InBounds reports whether c addresses a cell of this grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.w + c.X
}

// Cell returns a copy of the cell at c. The second result is false when
// c is out of bounds.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}
	return g.cells[g.index(c)], true
}

// Cells returns a copy of all cells in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Center returns the generation start cell, (width/2, height/2).
func (g *Grid) Center() Coord {
	return Coord{X: g.w / 2, Y: g.h / 2}
}

// Origin returns the player's start cell.
func (g *Grid) Origin() Coord {
	return Coord{}
}

// Goal returns the bottom-right cell.
func (g *Grid) Goal() Coord {
	return Coord{X: g.w - 1, Y: g.h - 1}
}

// Neighbor returns the adjacent coordinate in direction d when it lies
// inside the grid.
func (g *Grid) Neighbor(c Coord, d Direction) (Coord, bool) {
	if !d.Valid() || !g.InBounds(c) {
		return Coord{}, false
	}
	n := c.Step(d)
	if !g.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}

// HasWall reports whether cell c has a wall on side d. Coordinates
// outside the grid are treated as solid.
func (g *Grid) HasWall(c Coord, d Direction) bool {
	cell, ok := g.Cell(c)
	if !ok {
		return true
	}
	return cell.HasWall(d)
}

// Visited reports whether the generator has reached c.
func (g *Grid) Visited(c Coord) bool {
	cell, ok := g.Cell(c)
	return ok && cell.Visited
}

// Carve opens the wall between from and its neighbor in direction d,
// removing both sides in one operation and marking the neighbor visited.
// The neighbor must exist and must not be visited yet; otherwise nothing
// changes and Carve returns false.
func (g *Grid) Carve(from Coord, d Direction) bool {
	n, ok := g.Neighbor(from, d)
	if !ok {
		invariant(false, "carve %v toward %v leaves the grid", from, d)
		return false
	}
	to := &g.cells[g.index(n)]
	if to.Visited {
		invariant(false, "carve %v toward %v into visited cell %v", from, d, n)
		return false
	}

	g.cells[g.index(from)].Walls[d] = false
	to.Walls[d.Opposite()] = false
	to.Visited = true
	return true
}

// markVisited flags c without touching any wall.
func (g *Grid) markVisited(c Coord) {
	g.cells[g.index(c)].Visited = true
}

// OpenEdges counts passages between adjacent cells. Each passage is
// counted once.
func (g *Grid) OpenEdges() int {
	n := 0
	for _, c := range g.cells {
		if c.Pos.X < g.w-1 && !c.Walls[Right] {
			n++
		}
		if c.Pos.Y < g.h-1 && !c.Walls[Bottom] {
			n++
		}
	}
	return n
}

// String draws the grid as ASCII art, three characters per cell.
func (g *Grid) String() string {
	if g.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.WriteByte('+')
		for x := 0; x < g.w; x++ {
			if g.HasWall(C(x, y), Top) {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteByte('\n')

		for x := 0; x < g.w; x++ {
			if g.HasWall(C(x, y), Left) {
				b.WriteByte('|')
			} else {
				b.WriteByte(' ')
			}
			b.WriteString("   ")
		}
		if g.HasWall(C(g.w-1, y), Right) {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}

	b.WriteByte('+')
	for x := 0; x < g.w; x++ {
		if g.HasWall(C(x, g.h-1), Bottom) {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteByte('\n')
	return b.String()
}
