// Package cave builds complete multi-layer caves from a template.
package cave

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/roguecave/internal/item"
	"github.com/samdwyer/roguecave/internal/logging"
	"github.com/samdwyer/roguecave/internal/metrics"
	"github.com/samdwyer/roguecave/internal/telemetry"
	"github.com/samdwyer/roguecave/internal/world"
)

// Cave owns a generated map, its entrance and the items on each layer. It is
// immutable once New returns.
type Cave struct {
	tmpl     Template
	gameMap  *world.Map
	entrance world.Coord
	items    map[int]item.Placement
	regions  [][]world.Region
	stairs   []world.StairLink
	stage    Stage
}

// New builds a cave from tmpl. ctx carries the parent trace span.
func New(ctx context.Context, tmpl Template) *Cave {
	tracer := telemetry.Tracer("cave")
	ctx, span := tracer.Start(ctx, "cave.generate")
	defer span.End()

	startTime := time.Now()

	c := &Cave{stage: StageConfigure}
	c.configure(tmpl)

	c.runStage(ctx, tracer, StageGenerateLayers, c.generateLayers)
	c.runStage(ctx, tracer, StageResolveConnectivity, c.resolveConnectivity)
	c.runStage(ctx, tracer, StageLinkFloors, c.linkFloors)
	c.runStage(ctx, tracer, StagePopulateItems, c.populateItems)
	c.stage = StageReady
	c.regions = nil

	elapsed := time.Since(startTime)
	metrics.CaveGenerated(elapsed)

	span.SetAttributes(
		attribute.Int("cave.width", c.gameMap.Width()),
		attribute.Int("cave.height", c.gameMap.Height()),
		attribute.Int("cave.depth", c.gameMap.Depth()),
		attribute.String("cave.generator", c.tmpl.Generator),
		attribute.Int("cave.stairs", len(c.stairs)),
		attribute.Int64("cave.generation_ms", elapsed.Milliseconds()),
	)
	logging.Debug("cave %dx%dx%d ready in %s", c.gameMap.Width(), c.gameMap.Height(), c.gameMap.Depth(), elapsed)

	return c
}

// runStage advances to stage and runs fn inside a child span.
func (c *Cave) runStage(ctx context.Context, tracer trace.Tracer, stage Stage, fn func(trace.Span)) {
	c.stage = stage
	_, span := tracer.Start(ctx, "cave."+stage.String())
	defer span.End()
	fn(span)
}

func (c *Cave) configure(tmpl Template) {
	c.tmpl = tmpl.WithDefaults()
	c.entrance = *c.tmpl.Entrance
	c.gameMap = world.NewMap(c.tmpl.Width, c.tmpl.Height, c.tmpl.Depth)
	c.items = make(map[int]item.Placement, c.tmpl.Depth)
}

func (c *Cave) generateLayers(span trace.Span) {
	gen := world.NewRegionGenerator(c.tmpl.Generator)
	c.regions = make([][]world.Region, c.gameMap.Depth())

	total := 0
	for z := 0; z < c.gameMap.Depth(); z++ {
		c.regions[z] = gen.Generate(c.gameMap.Layer(z), c.tmpl.RandFunc)
		total += len(c.regions[z])
		if len(c.regions[z]) == 0 {
			logging.Debug("layer %d carved no regions", z)
		}
	}
	span.SetAttributes(attribute.Int("cave.regions", total))
}

func (c *Cave) resolveConnectivity(span trace.Span) {
	resolver := world.Resolver{MinRegionSize: c.tmpl.MinRegionSize}

	var kept, discarded, corridors int
	for z := 0; z < c.gameMap.Depth(); z++ {
		res := resolver.Resolve(c.gameMap.Layer(z), c.regions[z], c.tmpl.RandFunc)
		kept += res.Kept
		discarded += res.Discarded
		corridors += res.Corridors
		if res.Kept == 0 {
			logging.Debug("layer %d is all wall", z)
		}
	}
	metrics.RegionsDiscarded(discarded)
	span.SetAttributes(
		attribute.Int("cave.regions_kept", kept),
		attribute.Int("cave.regions_discarded", discarded),
		attribute.Int("cave.corridors", corridors),
	)
}

func (c *Cave) linkFloors(span trace.Span) {
	c.stairs = world.LinkFloors(c.gameMap, c.tmpl.RandFunc)
	if missing := c.gameMap.Depth() - 1 - len(c.stairs); missing > 0 {
		logging.Warn("%d layer boundaries have no stairs", missing)
	}
	span.SetAttributes(attribute.Int("cave.stairs", len(c.stairs)))
}

func (c *Cave) populateItems(span trace.Span) {
	populator := item.NewPopulator(c.tmpl.Registry)

	total := 0
	for z := 0; z < c.gameMap.Depth(); z++ {
		placed := populator.Populate(c.gameMap.Layer(z), c.tmpl.ItemTypesFor(z), c.tmpl.RandFunc)
		for _, stack := range placed {
			for _, it := range stack {
				metrics.ItemPlaced(it.Type)
			}
		}
		total += placed.Count()
		c.items[z] = placed
	}
	span.SetAttributes(attribute.Int("cave.items", total))
}

// Map returns the generated map. Callers must not modify it.
func (c *Cave) Map() *world.Map {
	return c.gameMap
}

// Entrance returns the starting position for new entities.
func (c *Cave) Entrance() world.Coord {
	return c.entrance
}

// Items returns the items on layer z keyed by position. Layers without items,
// or outside the map, yield an empty placement.
func (c *Cave) Items(z int) item.Placement {
	if placed, ok := c.items[z]; ok {
		return placed
	}
	return item.Placement{}
}

// ItemsAt returns the items stacked at pos.
func (c *Cave) ItemsAt(pos world.Coord) []*item.Item {
	return c.Items(pos.Z)[pos]
}

// Stairs returns the stairs pairs linking adjacent layers.
func (c *Cave) Stairs() []world.StairLink {
	return c.stairs
}

// Stage returns the construction stage; StageReady after New.
func (c *Cave) Stage() Stage {
	return c.stage
}

// Template returns the effective template, defaults applied.
func (c *Cave) Template() Template {
	return c.tmpl
}
