package world

// Layer is one horizontal slice of a Map. Tiles shares storage with the map.
type Layer struct {
	Z      int
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewLayer creates a detached layer filled with walls.
func NewLayer(z, width, height int) *Layer {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Wall
		}
	}
	return &Layer{Z: z, Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) lies on the layer.
func (l *Layer) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// inInterior reports whether (x, y) lies inside the outer wall ring.
func (l *Layer) inInterior(x, y int) bool {
	return x > 0 && x < l.Width-1 && y > 0 && y < l.Height-1
}

// Get returns the tile at (x, y), or Unknown outside the layer.
func (l *Layer) Get(x, y int) Tile {
	if !l.InBounds(x, y) {
		return Unknown
	}
	return l.Tiles[y][x]
}

// Set stores t at (x, y). Positions outside the layer are ignored.
func (l *Layer) Set(x, y int, t Tile) {
	if l.InBounds(x, y) {
		l.Tiles[y][x] = t
	}
}

// Cells returns the positions holding t in row-major order.
func (l *Layer) Cells(t Tile) []Coord {
	var cells []Coord
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.Tiles[y][x] == t {
				cells = append(cells, Coord{X: x, Y: y, Z: l.Z})
			}
		}
	}
	return cells
}

// WalkableCells returns every walkable position in row-major order.
func (l *Layer) WalkableCells() []Coord {
	var cells []Coord
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.Tiles[y][x].IsWalkable() {
				cells = append(cells, Coord{X: x, Y: y, Z: l.Z})
			}
		}
	}
	return cells
}

// interiorArea is the number of cells carving may touch.
func (l *Layer) interiorArea() int {
	if l.Width < 3 || l.Height < 3 {
		return 0
	}
	return (l.Width - 2) * (l.Height - 2)
}

// CarveCorridor opens an L-shaped corridor between two positions. When
// horizontalFirst is set the corridor runs along from's row first. Only walls
// inside the outer ring are converted to floor.
func (l *Layer) CarveCorridor(from, to Coord, horizontalFirst bool) {
	if horizontalFirst {
		l.carveHorizontal(from.X, to.X, from.Y)
		l.carveVertical(from.Y, to.Y, to.X)
	} else {
		l.carveVertical(from.Y, to.Y, from.X)
		l.carveHorizontal(from.X, to.X, to.Y)
	}
}

func (l *Layer) carveHorizontal(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		l.carve(x, y)
	}
}

func (l *Layer) carveVertical(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		l.carve(x, y)
	}
}

func (l *Layer) carve(x, y int) {
	if l.inInterior(x, y) && l.Tiles[y][x] == Wall {
		l.Tiles[y][x] = Floor
	}
}
