// Package config reads cave templates from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/roguecave/internal/cave"
	"github.com/samdwyer/roguecave/internal/gamedata"
	"github.com/samdwyer/roguecave/internal/item"
	"github.com/samdwyer/roguecave/internal/world"
)

// EnvConfig names the environment variable consulted when no path is given.
const EnvConfig = "ROGUECAVE_CONFIG"

// layerItemsPrefix starts the per-layer item keys, e.g. itemTypes2.
const layerItemsPrefix = "itemTypes"

// File is the on-disk form of a cave template.
type File struct {
	Width         int            `yaml:"width"`
	Height        int            `yaml:"height"`
	Depth         int            `yaml:"depth"`
	Entrance      *Entrance      `yaml:"entrance"`
	Seed          int64          `yaml:"seed"`
	Generator     string         `yaml:"generator"`
	MinRegionSize int            `yaml:"minRegionSize"`
	ItemTypes     map[string]int `yaml:"itemTypes"`

	// Items points to a JSON item definitions file, relative to the
	// template file. Empty means the embedded definitions.
	Items string `yaml:"items"`

	// Rest collects the keys not listed above, including itemTypes<N>.
	Rest map[string]yaml.Node `yaml:",inline"`
}

// Entrance is the starting position of new entities.
type Entrance struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// Load reads the template at path. If path is empty it tries ROGUECAVE_CONFIG
// and, failing that, returns the default template.
func Load(path string) (cave.Template, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
		if path == "" {
			return cave.DefaultTemplate(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cave.Template{}, fmt.Errorf("reading config: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return cave.Template{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file.Template(filepath.Dir(path))
}

// Parse decodes a YAML template.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// Template converts the file into a cave template. baseDir resolves a
// relative Items path.
func (f *File) Template(baseDir string) (cave.Template, error) {
	tmpl := cave.Template{
		Width:         f.Width,
		Height:        f.Height,
		Depth:         f.Depth,
		Seed:          f.Seed,
		Generator:     f.Generator,
		MinRegionSize: f.MinRegionSize,
	}
	if f.Entrance != nil {
		tmpl.Entrance = &world.Coord{X: f.Entrance.X, Y: f.Entrance.Y, Z: f.Entrance.Z}
	}
	if f.ItemTypes != nil {
		tmpl.ItemTypes = item.Distribution(f.ItemTypes)
	}

	layers, err := f.layerItemTypes()
	if err != nil {
		return cave.Template{}, err
	}
	tmpl.LayerItemTypes = layers

	if f.Items != "" {
		path := f.Items
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		registry, err := gamedata.LoadItemRegistryFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return cave.Template{}, fmt.Errorf("loading items: %w", err)
		}
		tmpl.Registry = registry
	}
	return tmpl, nil
}

// layerItemTypes picks the itemTypes<N> keys out of the remaining entries.
// Other unknown keys are ignored.
func (f *File) layerItemTypes() (map[int]item.Distribution, error) {
	var layers map[int]item.Distribution
	for key, node := range f.Rest {
		suffix, ok := strings.CutPrefix(key, layerItemsPrefix)
		if !ok || suffix == "" {
			continue
		}
		z, err := strconv.Atoi(suffix)
		if err != nil || z < 0 {
			continue
		}

		var dist map[string]int
		if err := node.Decode(&dist); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", key, err)
		}
		if layers == nil {
			layers = make(map[int]item.Distribution)
		}
		layers[z] = item.Distribution(dist)
	}
	return layers, nil
}
