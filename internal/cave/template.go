package cave

import (
	"github.com/samdwyer/roguecave/internal/gamedata"
	"github.com/samdwyer/roguecave/internal/item"
	"github.com/samdwyer/roguecave/internal/world"
)

// Default cave dimensions
const (
	DefaultWidth  = 80
	DefaultHeight = 24
	DefaultDepth  = 3
)

// Template configures a cave. Zero values fall back to DefaultTemplate.
type Template struct {
	Width  int
	Height int
	Depth  int

	// Entrance is where new entities start. Nil means {0,0,0}.
	Entrance *world.Coord

	// RandFunc drives every random choice. When nil a seeded source is
	// used; a Seed of 0 means a time-derived seed.
	RandFunc world.RandFunc
	Seed     int64

	// Generator names the region generator ("cellular" or "rooms").
	Generator     string
	MinRegionSize int

	// ItemTypes applies to every layer without an entry in LayerItemTypes.
	ItemTypes item.Distribution
	// LayerItemTypes replaces ItemTypes for the given layers.
	LayerItemTypes map[int]item.Distribution

	// Registry resolves item type names. Nil means the embedded registry.
	Registry *gamedata.ItemRegistry
}

// DefaultTemplate returns the configuration used for unspecified options.
func DefaultTemplate() Template {
	return Template{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Depth:         DefaultDepth,
		Entrance:      &world.Coord{},
		Generator:     world.GeneratorCellular,
		MinRegionSize: world.DefaultMinRegionSize,
	}
}

// WithDefaults returns t with missing or invalid options replaced by their
// defaults.
func (t Template) WithDefaults() Template {
	def := DefaultTemplate()
	if t.Width <= 0 {
		t.Width = def.Width
	}
	if t.Height <= 0 {
		t.Height = def.Height
	}
	if t.Depth <= 0 {
		t.Depth = def.Depth
	}
	if t.Entrance == nil {
		t.Entrance = def.Entrance
	} else {
		entrance := *t.Entrance
		t.Entrance = &entrance
	}
	if t.Generator != world.GeneratorCellular && t.Generator != world.GeneratorRooms {
		t.Generator = def.Generator
	}
	if t.MinRegionSize <= 0 {
		t.MinRegionSize = def.MinRegionSize
	}
	if t.RandFunc == nil {
		t.RandFunc = world.SeededRandFunc(t.Seed)
	}
	if t.Registry == nil {
		t.Registry = gamedata.DefaultItemRegistry()
	}
	return t
}

// ItemTypesFor returns the distribution requested for layer z.
func (t Template) ItemTypesFor(z int) item.Distribution {
	if dist, ok := t.LayerItemTypes[z]; ok {
		return dist
	}
	return t.ItemTypes
}
