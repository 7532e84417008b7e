package gamedata

import (
	"fmt"
	"io/fs"
	"sort"
	"sync"
)

// ItemRegistry holds item type definitions keyed by type name. It is
// read-only after construction and safe to share.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef, len(items)),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	return LoadItemRegistryFS(dataFS, "items.json")
}

// LoadItemRegistryFS creates a registry from an items file in fsys.
func LoadItemRegistryFS(fsys fs.FS, filename string) (*ItemRegistry, error) {
	file, err := LoadFS[ItemsFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("no items loaded from %s", filename)
	}
	return NewItemRegistry(file.Items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

var (
	defaultRegistry     *ItemRegistry
	defaultRegistryOnce sync.Once
)

// DefaultItemRegistry returns the registry built from the embedded data.
func DefaultItemRegistry() *ItemRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = MustLoadItemRegistry()
	})
	return defaultRegistry
}

// Get returns the item definition with the given type name.
func (r *ItemRegistry) Get(id string) (*ItemDef, bool) {
	def, ok := r.items[id]
	return def, ok
}

// IDs returns the known type names in sorted order.
func (r *ItemRegistry) IDs() []string {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}

// Count returns the number of item types in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}
