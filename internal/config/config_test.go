package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/roguecave/internal/cave"
	"github.com/samdwyer/roguecave/internal/item"
	"github.com/samdwyer/roguecave/internal/world"
)

const sampleConfig = `
width: 40
height: 20
depth: 2
entrance:
  x: 3
  y: 4
  z: 1
seed: 1234
generator: rooms
minRegionSize: 12
itemTypes:
  rock: 2
  dagger: 1
itemTypes1:
  apple: 3
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTemplate(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cave.yaml", sampleConfig)

	tmpl, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40, tmpl.Width)
	assert.Equal(t, 20, tmpl.Height)
	assert.Equal(t, 2, tmpl.Depth)
	require.NotNil(t, tmpl.Entrance)
	assert.Equal(t, world.Coord{X: 3, Y: 4, Z: 1}, *tmpl.Entrance)
	assert.Equal(t, int64(1234), tmpl.Seed)
	assert.Equal(t, world.GeneratorRooms, tmpl.Generator)
	assert.Equal(t, 12, tmpl.MinRegionSize)
	assert.Equal(t, item.Distribution{"rock": 2, "dagger": 1}, tmpl.ItemTypes)
	assert.Equal(t, map[int]item.Distribution{1: {"apple": 3}}, tmpl.LayerItemTypes)
	assert.Nil(t, tmpl.Registry)
}

func TestLayerItemTypesReplaceFlat(t *testing.T) {
	file, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	tmpl, err := file.Template(".")
	require.NoError(t, err)

	assert.Equal(t, item.Distribution{"rock": 2, "dagger": 1}, tmpl.ItemTypesFor(0))
	assert.Equal(t, item.Distribution{"apple": 3}, tmpl.ItemTypesFor(1))
}

func TestIgnoresUnrelatedKeys(t *testing.T) {
	file, err := Parse([]byte("depth: 1\ntheme: ice\nitemTypesX:\n  rock: 1\nitemTypes-1:\n  rock: 1\n"))
	require.NoError(t, err)

	tmpl, err := file.Template(".")
	require.NoError(t, err)

	assert.Equal(t, 1, tmpl.Depth)
	assert.Nil(t, tmpl.LayerItemTypes)
}

func TestBadLayerItemTypes(t *testing.T) {
	file, err := Parse([]byte("itemTypes0: [rock, dagger]\n"))
	require.NoError(t, err)

	_, err = file.Template(".")
	assert.Error(t, err)
}

func TestEmptyPathUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")

	tmpl, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, cave.DefaultTemplate(), tmpl)
}

func TestEnvPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "env.yaml", "width: 30\n")
	t.Setenv(EnvConfig, path)

	tmpl, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, tmpl.Width)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "width: [1, 2\n")
	_, err = Load(bad)
	assert.Error(t, err)

	noItems := writeFile(t, dir, "noitems.yaml", "items: nowhere.json\n")
	_, err = Load(noItems)
	assert.Error(t, err)
}

func TestCustomItemsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "items.json", `{"items":[{"id":"gem","name":"gem","glyph":"*","color":"aqua","kind":"misc"}]}`)
	path := writeFile(t, dir, "cave.yaml", "width: 4\nheight: 5\ndepth: 1\nitems: items.json\nitemTypes:\n  gem: 1\n  rock: 1\n")

	tmpl, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, tmpl.Registry)
	assert.Equal(t, []string{"gem"}, tmpl.Registry.IDs())

	tmpl.RandFunc = func(n int) int { return 0 }
	c := cave.New(context.Background(), tmpl)
	items := c.Items(0)
	assert.Len(t, items.OfType("gem"), 1)
	assert.Empty(t, items.OfType("rock"))
}
