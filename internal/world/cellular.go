package world

const (
	defaultFillPercent = 50
	defaultIterations  = 3

	// An open cell stays open with at least surviveMin open neighbours; a
	// closed cell opens with at least bornMin.
	surviveMin = 4
	bornMin    = 5

	// Smoothing needs a full neighbourhood to mean anything.
	minSmoothSize = 3
)

// CellularGenerator carves cave-like regions with a cellular automaton run
// over the layer interior.
type CellularGenerator struct {
	FillPercent int // chance out of 100 that a cell starts open
	Iterations  int
}

// NewCellularGenerator returns a generator with the default parameters.
func NewCellularGenerator() *CellularGenerator {
	return &CellularGenerator{
		FillPercent: defaultFillPercent,
		Iterations:  defaultIterations,
	}
}

// Generate implements RegionGenerator.
func (g *CellularGenerator) Generate(layer *Layer, rand RandFunc) []Region {
	w, h := layer.Width-2, layer.Height-2
	if w < 1 || h < 1 {
		return nil
	}

	open := make([][]bool, h)
	for y := range open {
		open[y] = make([]bool, w)
		for x := range open[y] {
			open[y][x] = rand.choose(100) < g.FillPercent
		}
	}

	if w >= minSmoothSize && h >= minSmoothSize {
		for i := 0; i < g.Iterations; i++ {
			open = step(open, w, h)
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if open[y][x] {
				layer.carve(x+1, y+1)
			}
		}
	}

	return FindRegions(layer)
}

// step applies one automaton generation.
func step(open [][]bool, w, h int) [][]bool {
	next := make([][]bool, h)
	for y := range next {
		next[y] = make([]bool, w)
		for x := range next[y] {
			n := openNeighbours(open, x, y, w, h)
			if open[y][x] {
				next[y][x] = n >= surviveMin
			} else {
				next[y][x] = n >= bornMin
			}
		}
	}
	return next
}

// openNeighbours counts open cells around (x, y). Cells beyond the grid count
// as closed.
func openNeighbours(open [][]bool, x, y, w, h int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			if open[ny][nx] {
				count++
			}
		}
	}
	return count
}
