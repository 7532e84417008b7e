package world

// StairLink records the stairs joining layer Z (down) to layer Z+1 (up).
type StairLink struct {
	Down Coord
	Up   Coord
	// Carved is set when no shared floor existed and the upper layer had to
	// be opened at the stairs position.
	Carved bool
}

// LinkFloors places one stairs pair on every adjacent layer boundary. A
// boundary is skipped only when its lower layer has no floor at all.
func LinkFloors(m *Map, rand RandFunc) []StairLink {
	var links []StairLink
	for z := 0; z+1 < m.Depth(); z++ {
		if link, ok := linkLayers(m.Layer(z), m.Layer(z+1), rand); ok {
			links = append(links, link)
		}
	}
	return links
}

func linkLayers(lower, upper *Layer, rand RandFunc) (StairLink, bool) {
	var shared []Coord
	for _, c := range lower.Cells(Floor) {
		if upper.Get(c.X, c.Y) == Floor {
			shared = append(shared, c)
		}
	}

	carved := false
	var pos Coord
	if len(shared) > 0 {
		pos = Pick(rand, shared)
	} else {
		floors := lower.Cells(Floor)
		if len(floors) == 0 {
			return StairLink{}, false
		}
		pos = Pick(rand, floors)
		existing := upper.Cells(Floor)
		upper.Set(pos.X, pos.Y, Floor)
		if len(existing) > 0 {
			at := Coord{X: pos.X, Y: pos.Y, Z: upper.Z}
			upper.CarveCorridor(at, nearest(existing, at, rand), rand.choose(2) == 0)
		}
		carved = true
	}

	lower.Set(pos.X, pos.Y, StairsDown)
	upper.Set(pos.X, pos.Y, StairsUp)
	return StairLink{
		Down:   Coord{X: pos.X, Y: pos.Y, Z: lower.Z},
		Up:     Coord{X: pos.X, Y: pos.Y, Z: upper.Z},
		Carved: carved,
	}, true
}
