package world

// DefaultMinRegionSize is the smallest region kept on a full-size layer.
const DefaultMinRegionSize = 20

// Resolution summarises one connectivity pass over a layer.
type Resolution struct {
	Kept      int
	Discarded int
	Corridors int
}

// Resolver merges the regions of a layer into a single walkable component.
type Resolver struct {
	MinRegionSize int
}

// threshold scales the minimum region size down on small layers so a layer
// is never emptied just because it is tiny.
func (r Resolver) threshold(l *Layer) int {
	size := r.MinRegionSize
	if size <= 0 {
		size = DefaultMinRegionSize
	}
	return min(size, max(1, l.interiorArea()/4))
}

// Resolve reverts regions below the size threshold to wall and joins the rest
// with corridors. Every choice goes through rand.
func (r Resolver) Resolve(l *Layer, regions []Region, rand RandFunc) Resolution {
	var res Resolution
	minSize := r.threshold(l)

	pending := make([]Region, 0, len(regions))
	for _, region := range regions {
		if region.Size() < minSize {
			for _, c := range region.Cells {
				l.Set(c.X, c.Y, Wall)
			}
			res.Discarded++
			continue
		}
		pending = append(pending, region)
	}
	res.Kept = len(pending)
	if len(pending) < 2 {
		return res
	}

	first := rand.choose(len(pending))
	connected := append([]Coord(nil), pending[first].Cells...)
	pending = remove(pending, first)

	for len(pending) > 0 {
		i := rand.choose(len(pending))
		next := pending[i]
		pending = remove(pending, i)

		edge := next.Boundary(l)
		if len(edge) == 0 {
			edge = next.Cells
		}
		from := Pick(rand, edge)
		to := nearest(connected, from, rand)
		l.CarveCorridor(from, to, rand.choose(2) == 0)
		res.Corridors++

		connected = append(connected, next.Cells...)
	}
	return res
}

// nearest returns the cell closest to target, letting rand break ties.
func nearest(cells []Coord, target Coord, rand RandFunc) Coord {
	best := -1
	var ties []Coord
	for _, c := range cells {
		d := c.distance(target)
		switch {
		case best < 0 || d < best:
			best = d
			ties = append(ties[:0], c)
		case d == best:
			ties = append(ties, c)
		}
	}
	return Pick(rand, ties)
}

func remove(regions []Region, i int) []Region {
	return append(regions[:i], regions[i+1:]...)
}
