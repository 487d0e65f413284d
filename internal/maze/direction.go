package maze

// Direction names one side of a cell.
type Direction int

// Canonical order. Wall arrays and candidate enumeration both follow it.
const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists all four directions in canonical order.
var Directions = [4]Direction{Top, Right, Bottom, Left}

// Opposite returns the direction facing back across the same wall.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the column and row offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Top && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
