package maze

import "math/rand"

// Source supplies the generator's randomness. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Stats describes one generation run.
type Stats struct {
	Start    Coord // first cell pushed
	Carved   int   // passages opened, always Len()-1
	MaxDepth int   // deepest stack reached
}

// Generate carves g into a perfect maze with randomized iterative
// depth-first search. The grid is expected to be freshly Reset.
//
// Starting at the center cell, it repeatedly looks at the top of an
// explicit stack, collects the unvisited in-bounds neighbors in canonical
// order (Top, Right, Bottom, Left), and either backtracks when there are
// none or carves into one picked by src.Intn and pushes it. Every cell is
// pushed once and popped once.
func Generate(g *Grid, src Source) Stats {
	stats := Stats{}
	if g.Len() == 0 {
		return stats
	}

	start := g.Center()
	stats.Start = start
	g.markVisited(start)

	stack := make([]Coord, 1, g.Len())
	stack[0] = start
	stats.MaxDepth = 1

	var candidates [4]Direction
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		n := 0
		for _, d := range Directions {
			next, ok := g.Neighbor(current, d)
			if ok && !g.Visited(next) {
				candidates[n] = d
				n++
			}
		}

		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[pick(src, n)]
		if !g.Carve(current, d) {
			stack = stack[:len(stack)-1]
			continue
		}
		stats.Carved++
		stack = append(stack, current.Step(d))
		if len(stack) > stats.MaxDepth {
			stats.MaxDepth = len(stack)
		}
	}
	return stats
}

// pick draws an index in [0, n) and folds misbehaving sources back into
// range.
func pick(src Source, n int) int {
	i := src.Intn(n)
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return i
}

// GenerateSeeded builds and carves a width x height maze from a seed.
// The same seed and dimensions always produce the same maze.
func GenerateSeeded(width, height int, seed int64) (*Grid, Stats, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Generate(g, rand.New(rand.NewSource(seed)))
	return g, stats, nil
}
