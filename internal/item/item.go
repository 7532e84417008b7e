// Package item creates item instances and scatters them across cave layers.
package item

import (
	"github.com/google/uuid"

	"github.com/samdwyer/roguecave/internal/gamedata"
	"github.com/samdwyer/roguecave/internal/world"
)

// Item is one physical item in the cave. Items are independent instances;
// several may share a position.
type Item struct {
	ID          string
	Type        string // item type name, e.g. "dagger"
	Name        string
	Glyph       rune
	Color       string
	Kind        gamedata.ItemKind
	Damage      int
	AC          int
	Nutrition   int
	Description string
	Pos         world.Coord

	article string
}

// New creates an item of the given type at pos.
func New(def *gamedata.ItemDef, pos world.Coord) *Item {
	return &Item{
		ID:          uuid.NewString(),
		Type:        def.ID,
		Name:        def.Name,
		Glyph:       def.GlyphRune(),
		Color:       def.Color,
		Kind:        def.Kind,
		Damage:      def.Damage,
		AC:          def.AC,
		Nutrition:   def.Nutrition,
		Description: def.Description,
		Pos:         pos,
		article:     def.Article(),
	}
}

// Is reports whether the item is of the given type.
func (i *Item) Is(itemType string) bool {
	return i.Type == itemType
}

// DescribeA returns the name with an indefinite article ("a dagger").
func (i *Item) DescribeA() string {
	return i.article + " " + i.Name
}

// DescribeThe returns the name with a definite article ("the dagger").
func (i *Item) DescribeThe() string {
	return "the " + i.Name
}

// Representation returns the styled glyph in the same format as tiles.
func (i *Item) Representation() string {
	return "%c{" + i.Color + "}%b{black}" + string(i.Glyph) + "%c{white}%b{black}"
}
