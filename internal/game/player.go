package game

import (
	"fmt"

	"github.com/vovakirdan/mazerunner/internal/core"
	"github.com/vovakirdan/mazerunner/internal/maze"
)

// Geometry fixes the pixel layout used for interpolated movement.
// One grid step spans CellSize+Border pixels.
type Geometry struct {
	CellSize int // Interior size of a cell
	Border   int // Wall thickness
	Step     int // Pixels moved per axis per tick
}

// DefaultGeometry matches the classic 48px cells with 8px walls.
func DefaultGeometry() Geometry {
	return Geometry{CellSize: 48, Border: 8, Step: 14}
}

// Span returns the distance in pixels between two adjacent cells.
func (g Geometry) Span() int {
	return g.CellSize + g.Border
}

// Validate rejects layouts on which movement could never converge.
func (g Geometry) Validate() error {
	if g.CellSize <= 0 || g.Border < 0 || g.Step <= 0 {
		return fmt.Errorf("game: invalid geometry cell=%d border=%d step=%d", g.CellSize, g.Border, g.Step)
	}
	return nil
}

// Point is a position in pixel space.
type Point struct {
	X, Y int
}

// PixelOf returns the pixel-space position of a cell's top-left corner.
func (g Geometry) PixelOf(c maze.Coord) Point {
	return Point{X: c.X * g.Span(), Y: c.Y * g.Span()}
}

// Player is the traveler. Current is the last cell fully reached, Target
// is the cell being moved into, and Pos is the interpolated drawing
// position.
type Player struct {
	Current maze.Coord
	Target  maze.Coord
	Pos     Point
}

// NewPlayer places an idle player on cell at.
func NewPlayer(at maze.Coord, geom Geometry) Player {
	return Player{Current: at, Target: at, Pos: geom.PixelOf(at)}
}

// Idle reports whether the player has no move in progress.
func (p *Player) Idle() bool {
	return p.Current == p.Target
}

// TryMove commits a one-cell move in direction d if the player is idle,
// the neighbor exists, and no wall separates them. It reports whether the
// move was accepted. Intents that arrive mid-move are dropped.
func (p *Player) TryMove(g *maze.Grid, d maze.Direction) bool {
	if !p.Idle() {
		return false
	}
	next, ok := g.Neighbor(p.Target, d)
	if !ok || g.HasWall(p.Target, d) {
		return false
	}
	p.Target = next
	return true
}

// Advance moves Pos toward the target cell by up to geom.Step on each
// axis, never overshooting. An axis that has arrived snaps Current to the
// target on that axis.
func (p *Player) Advance(geom Geometry) {
	dest := geom.PixelOf(p.Target)

	p.Pos.X = core.StepToward(p.Pos.X, dest.X, geom.Step)
	if p.Pos.X == dest.X {
		p.Current.X = p.Target.X
	}

	p.Pos.Y = core.StepToward(p.Pos.Y, dest.Y, geom.Step)
	if p.Pos.Y == dest.Y {
		p.Current.Y = p.Target.Y
	}
}

// directionFor maps a movement action to a maze direction.
func directionFor(a core.Action) (maze.Direction, bool) {
	switch a {
	case core.ActionUp:
		return maze.Top, true
	case core.ActionRight:
		return maze.Right, true
	case core.ActionDown:
		return maze.Bottom, true
	case core.ActionLeft:
		return maze.Left, true
	}
	return 0, false
}
