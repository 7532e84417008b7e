package world

import "fmt"

// Coord is a position in the map. Z is the layer, Y the row, X the column.
type Coord struct {
	X, Y, Z int
}

// Key returns the "(x,y,z)" form used as a map key by clients.
func (c Coord) Key() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

func (c Coord) String() string {
	return c.Key()
}

// distance returns the Manhattan distance between two positions on a layer.
func (c Coord) distance(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

// neighbours4 returns the orthogonal neighbours of c on the same layer.
func (c Coord) neighbours4() [4]Coord {
	return [4]Coord{
		{X: c.X, Y: c.Y - 1, Z: c.Z},
		{X: c.X + 1, Y: c.Y, Z: c.Z},
		{X: c.X, Y: c.Y + 1, Z: c.Z},
		{X: c.X - 1, Y: c.Y, Z: c.Z},
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
