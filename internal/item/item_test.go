package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roguecave/internal/gamedata"
	"github.com/samdwyer/roguecave/internal/world"
)

func openLayer() *world.Layer {
	l := world.NewLayer(0, 6, 5)
	for y := 1; y < 4; y++ {
		for x := 1; x < 5; x++ {
			l.Set(x, y, world.Floor)
		}
	}
	return l
}

func first(n int) int { return 0 }

func TestNewItem(t *testing.T) {
	def, ok := gamedata.DefaultItemRegistry().Get("apple")
	require.True(t, ok)

	pos := world.Coord{X: 2, Y: 3, Z: 1}
	a := New(def, pos)
	b := New(def, pos)

	assert.Equal(t, "apple", a.Type)
	assert.Equal(t, pos, a.Pos)
	assert.Equal(t, "an apple", a.DescribeA())
	assert.Equal(t, "the apple", a.DescribeThe())
	assert.Equal(t, "%c{red}%b{black}%%c{white}%b{black}", a.Representation())
	assert.NotEqual(t, a.ID, b.ID, "items are independent instances")
	assert.NotSame(t, a, b)
}

func TestPopulateEmptyDistribution(t *testing.T) {
	placed := NewPopulator(nil).Populate(openLayer(), nil, first)
	assert.Empty(t, placed)
}

func TestPopulateStacksOnChosenCell(t *testing.T) {
	placed := NewPopulator(nil).Populate(openLayer(), Distribution{"rock": 1, "dagger": 1}, first)

	require.Len(t, placed, 1)
	stack := placed[world.Coord{X: 1, Y: 1, Z: 0}]
	require.Len(t, stack, 2)
	// Sorted type order: dagger before rock
	assert.True(t, stack[0].Is("dagger"))
	assert.True(t, stack[1].Is("rock"))
}

func TestPopulateSkipsUnknownAndZero(t *testing.T) {
	placed := NewPopulator(nil).Populate(openLayer(), Distribution{"rock": 0, "dagger": 2, "non-thing": 1}, world.SeededRandFunc(3))

	assert.Equal(t, 2, placed.Count())
	assert.Len(t, placed.OfType("dagger"), 2)
	assert.Empty(t, placed.OfType("rock"))
	assert.Empty(t, placed.OfType("non-thing"))
}

func TestPopulateOnlyWalkableCells(t *testing.T) {
	l := openLayer()
	l.Set(2, 2, world.StairsDown)

	placed := NewPopulator(nil).Populate(l, Distribution{"rock": 50}, world.SeededRandFunc(11))

	assert.Equal(t, 50, placed.Count())
	for pos, items := range placed {
		assert.True(t, l.Get(pos.X, pos.Y).IsWalkable(), "item at %v", pos)
		for _, it := range items {
			assert.Equal(t, pos, it.Pos)
		}
	}
}

func TestPopulateAllWallLayer(t *testing.T) {
	placed := NewPopulator(nil).Populate(world.NewLayer(0, 4, 4), Distribution{"rock": 3}, first)
	assert.Empty(t, placed)
}

func TestPopulateCustomRegistry(t *testing.T) {
	registry := gamedata.NewItemRegistry([]gamedata.ItemDef{{ID: "gem", Name: "gem", Glyph: "*"}})

	placed := NewPopulator(registry).Populate(openLayer(), Distribution{"gem": 1, "rock": 1}, first)

	assert.Equal(t, 1, placed.Count())
	assert.Len(t, placed.OfType("gem"), 1)
}

func TestPlacementKeyed(t *testing.T) {
	placed := NewPopulator(nil).Populate(openLayer(), Distribution{"rock": 2}, first)

	keyed := placed.Keyed()
	require.Len(t, keyed, 1)
	assert.Len(t, keyed["(1,1,0)"], 2)
}
