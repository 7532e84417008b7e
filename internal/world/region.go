package world

// Region is a 4-connected set of floor cells on one layer.
type Region struct {
	Cells []Coord
}

// Size returns the number of cells in the region.
func (r Region) Size() int {
	return len(r.Cells)
}

// Boundary returns the region's cells that touch a non-walkable tile.
func (r Region) Boundary(l *Layer) []Coord {
	var edge []Coord
	for _, c := range r.Cells {
		for _, n := range c.neighbours4() {
			if !l.Get(n.X, n.Y).IsWalkable() {
				edge = append(edge, c)
				break
			}
		}
	}
	return edge
}

// RegionGenerator carves floor regions into an all-wall layer.
type RegionGenerator interface {
	Generate(layer *Layer, rand RandFunc) []Region
}

// Generator names accepted by NewRegionGenerator.
const (
	GeneratorCellular = "cellular"
	GeneratorRooms    = "rooms"
)

// NewRegionGenerator returns the generator registered under name. Unknown
// names fall back to the cellular generator.
func NewRegionGenerator(name string) RegionGenerator {
	switch name {
	case GeneratorRooms:
		return NewRoomsGenerator()
	default:
		return NewCellularGenerator()
	}
}

// FindRegions labels the floor regions of a layer in row-major discovery
// order.
func FindRegions(l *Layer) []Region {
	visited := make([][]bool, l.Height)
	for y := range visited {
		visited[y] = make([]bool, l.Width)
	}

	var regions []Region
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if visited[y][x] || l.Tiles[y][x] != Floor {
				continue
			}
			regions = append(regions, floodFill(l, Coord{X: x, Y: y, Z: l.Z}, visited))
		}
	}
	return regions
}

// floodFill collects the floor cells reachable from start.
func floodFill(l *Layer, start Coord, visited [][]bool) Region {
	var region Region
	stack := []Coord{start}
	visited[start.Y][start.X] = true

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region.Cells = append(region.Cells, c)

		for _, n := range c.neighbours4() {
			if !l.InBounds(n.X, n.Y) || visited[n.Y][n.X] || l.Tiles[n.Y][n.X] != Floor {
				continue
			}
			visited[n.Y][n.X] = true
			stack = append(stack, n)
		}
	}
	return region
}
