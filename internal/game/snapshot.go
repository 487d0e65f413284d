package game

import "github.com/vovakirdan/mazerunner/internal/maze"

// Snapshot captures the game state for determinism testing and logging.
type Snapshot struct {
	Tick         uint64
	State        State
	Current      maze.Coord
	Target       maze.Coord
	PosX         int
	PosY         int
	Moves        int
	ElapsedTicks uint64
	MazeSeed     int64
	Generations  int
	OpenEdges    int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick}
	}
	s := g.session
	p := s.Player()
	return Snapshot{
		Tick:         g.tick,
		State:        s.State(),
		Current:      p.Current,
		Target:       p.Target,
		PosX:         p.Pos.X,
		PosY:         p.Pos.Y,
		Moves:        s.Moves(),
		ElapsedTicks: s.ElapsedTicks(),
		MazeSeed:     s.MazeSeed(),
		Generations:  s.Generations(),
		OpenEdges:    s.Grid().OpenEdges(),
	}
}
