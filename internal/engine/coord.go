package engine

import "fmt"

// Coordinate is a cell position on the board.
// X grows to the right, Y grows downward. Coordinates are comparable and
// are used directly as map keys.
type Coordinate struct {
	X int64
	Y int64
}

// C is a convenience constructor for Coordinate.
func C(x, y int64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String returns the wire form "x y".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d %d", c.X, c.Y)
}

// Add returns a new Coordinate offset by (dx, dy).
func (c Coordinate) Add(dx, dy int64) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// neighborOffsets lists the 8 surrounding cells.
var neighborOffsets = [8][2]int64{
	{1, 0}, {0, -1}, {-1, 0}, {0, 1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// Neighbors returns the 8 cells around c. No wraparound; results may lie
// outside any board.
func (c Coordinate) Neighbors() [8]Coordinate {
	var out [8]Coordinate
	for i, d := range neighborOffsets {
		out[i] = c.Add(d[0], d[1])
	}
	return out
}
