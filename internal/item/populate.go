package item

import (
	"sort"

	"github.com/samdwyer/roguecave/internal/gamedata"
	"github.com/samdwyer/roguecave/internal/logging"
	"github.com/samdwyer/roguecave/internal/world"
)

// Distribution maps item type names to requested counts.
type Distribution map[string]int

// Placement holds the items of one layer keyed by position, in placement
// order.
type Placement map[world.Coord][]*Item

// Count returns the number of items in the placement.
func (p Placement) Count() int {
	n := 0
	for _, items := range p {
		n += len(items)
	}
	return n
}

// OfType returns the placed items of the given type.
func (p Placement) OfType(itemType string) []*Item {
	var found []*Item
	for _, items := range p {
		for _, it := range items {
			if it.Is(itemType) {
				found = append(found, it)
			}
		}
	}
	return found
}

// Keyed returns the placement keyed by Coord.Key, the "(x,y,z)" form clients
// use.
func (p Placement) Keyed() map[string][]*Item {
	keyed := make(map[string][]*Item, len(p))
	for pos, items := range p {
		keyed[pos.Key()] = items
	}
	return keyed
}

// Populator scatters items over the walkable cells of a layer.
type Populator struct {
	Registry *gamedata.ItemRegistry
}

// NewPopulator returns a populator resolving types against registry, or the
// embedded registry when registry is nil.
func NewPopulator(registry *gamedata.ItemRegistry) *Populator {
	if registry == nil {
		registry = gamedata.DefaultItemRegistry()
	}
	return &Populator{Registry: registry}
}

// Populate places every requested unit on a walkable cell chosen with rand.
// Type names are handled in sorted order so a deterministic rand gives a
// deterministic placement. Unknown names and non-positive counts place
// nothing.
func (p *Populator) Populate(layer *world.Layer, dist Distribution, rand world.RandFunc) Placement {
	placed := make(Placement)
	if len(dist) == 0 {
		return placed
	}

	cells := layer.WalkableCells()
	if len(cells) == 0 {
		logging.Debug("layer %d has no walkable cells, skipping %d item types", layer.Z, len(dist))
		return placed
	}

	names := make([]string, 0, len(dist))
	for name := range dist {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		count := dist[name]
		if count <= 0 {
			continue
		}
		def, ok := p.Registry.Get(name)
		if !ok {
			logging.Debug("unknown item type %q requested on layer %d", name, layer.Z)
			continue
		}
		for n := 0; n < count; n++ {
			pos := world.Pick(rand, cells)
			placed[pos] = append(placed[pos], New(def, pos))
		}
	}
	return placed
}
