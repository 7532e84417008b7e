package world

// Map owns the full tile grid indexed [z][y][x]. Its dimensions never change
// after construction.
type Map struct {
	width  int
	height int
	depth  int
	tiles  [][][]Tile
	layers []*Layer
}

// NewMap creates a map filled with walls.
func NewMap(width, height, depth int) *Map {
	m := &Map{
		width:  width,
		height: height,
		depth:  depth,
		tiles:  make([][][]Tile, depth),
		layers: make([]*Layer, depth),
	}
	for z := 0; z < depth; z++ {
		layer := NewLayer(z, width, height)
		m.tiles[z] = layer.Tiles
		m.layers[z] = layer
	}
	return m
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Depth returns the number of layers.
func (m *Map) Depth() int { return m.depth }

// Tiles returns the raw grid, depth outer, then height, then width.
func (m *Map) Tiles() [][][]Tile {
	return m.tiles
}

// Tile returns the tile at the given position, or Unknown if any axis is out
// of range.
func (m *Map) Tile(x, y, z int) Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.height || z < 0 || z >= m.depth {
		return Unknown
	}
	return m.tiles[z][y][x]
}

// TileAt is Tile for a Coord.
func (m *Map) TileAt(c Coord) Tile {
	return m.Tile(c.X, c.Y, c.Z)
}

// Layer returns the layer at depth z, or nil if z is out of range.
func (m *Map) Layer(z int) *Layer {
	if z < 0 || z >= m.depth {
		return nil
	}
	return m.layers[z]
}

// IsWalkable reports whether the given position can be walked on.
func (m *Map) IsWalkable(x, y, z int) bool {
	return m.Tile(x, y, z).IsWalkable()
}
