package gamedata

import "strings"

// ItemKind groups item types by how they are used.
type ItemKind string

const (
	KindMisc   ItemKind = "misc"
	KindWeapon ItemKind = "weapon"
	KindArmour ItemKind = "armour"
	KindFood   ItemKind = "food"
)

// ItemDef defines an item type loaded from JSON.
type ItemDef struct {
	ID          string   `json:"id"`                  // Type name used in item distributions (e.g., "dagger")
	Name        string   `json:"name"`                // Display name (e.g., "leather armour")
	Glyph       string   `json:"glyph"`               // Single character for rendering
	Color       string   `json:"color"`               // Color name or hex code
	Kind        ItemKind `json:"kind"`                // Usage category
	Damage      int      `json:"damage,omitempty"`    // Damage bonus when wielded or thrown
	AC          int      `json:"ac,omitempty"`        // Armour class bonus when worn
	Nutrition   int      `json:"nutrition,omitempty"` // Hunger restored when eaten
	Description string   `json:"description"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *ItemDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// IsEdible reports whether the item can be eaten.
func (d *ItemDef) IsEdible() bool {
	return d.Kind == KindFood
}

// IsWieldable reports whether the item can be wielded as a weapon.
func (d *ItemDef) IsWieldable() bool {
	return d.Kind == KindWeapon
}

// IsWearable reports whether the item can be worn as armour.
func (d *ItemDef) IsWearable() bool {
	return d.Kind == KindArmour
}

// Article returns the indefinite article for the item's name.
func (d *ItemDef) Article() string {
	if d.Name != "" && strings.ContainsRune("aeiou", rune(strings.ToLower(d.Name)[0])) {
		return "an"
	}
	return "a"
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
