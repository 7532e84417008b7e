// Package world provides cave map generation and tile management.
package world

import "fmt"

// Tile identifies a tile kind. Values index an immutable property table, so
// comparing two tiles compares their kinds.
type Tile uint8

const (
	// Unknown is returned for positions outside the map.
	Unknown Tile = iota
	// Wall is solid, diggable rock.
	Wall
	// Floor is open cave floor.
	Floor
	// StairsUp leads to the layer above (z-1).
	StairsUp
	// StairsDown leads to the layer below (z+1).
	StairsDown
)

// tileProps holds the fixed properties of a tile kind.
type tileProps struct {
	char        rune
	foreground  string
	background  string
	diggable    bool
	walkable    bool
	blocksLight bool
	description string
}

var catalog = [...]tileProps{
	Unknown: {
		char:        ' ',
		foreground:  "white",
		background:  "black",
		description: "(unknown)",
	},
	Wall: {
		char:        '#',
		foreground:  "goldenrod",
		background:  "black",
		diggable:    true,
		blocksLight: true,
		description: "A cave wall",
	},
	Floor: {
		char:        '.',
		foreground:  "white",
		background:  "black",
		walkable:    true,
		description: "A cave floor",
	},
	StairsUp: {
		char:        '<',
		foreground:  "white",
		background:  "black",
		walkable:    true,
		description: "A rock staircase leading upwards",
	},
	StairsDown: {
		char:        '>',
		foreground:  "white",
		background:  "black",
		walkable:    true,
		description: "A rock staircase leading downwards",
	},
}

// props returns the table entry for t; out-of-range values read as Unknown.
func (t Tile) props() *tileProps {
	if int(t) >= len(catalog) {
		return &catalog[Unknown]
	}
	return &catalog[t]
}

// Char returns the tile's display glyph.
func (t Tile) Char() rune {
	return t.props().char
}

// Foreground returns the foreground color name.
func (t Tile) Foreground() string {
	return t.props().foreground
}

// Background returns the background color name.
func (t Tile) Background() string {
	return t.props().background
}

// Representation returns the styled glyph, resetting colors afterwards.
func (t Tile) Representation() string {
	p := t.props()
	return fmt.Sprintf("%%c{%s}%%b{%s}%c%%c{white}%%b{black}", p.foreground, p.background, p.char)
}

// IsDiggable reports whether the tile can be dug through.
func (t Tile) IsDiggable() bool {
	return t.props().diggable
}

// IsWalkable reports whether entities and items may occupy the tile.
func (t Tile) IsWalkable() bool {
	return t.props().walkable
}

// IsBlockingLight reports whether the tile blocks line of sight.
func (t Tile) IsBlockingLight() bool {
	return t.props().blocksLight
}

// Description returns the tile's description text.
func (t Tile) Description() string {
	return t.props().description
}

func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case StairsUp:
		return "stairs-up"
	case StairsDown:
		return "stairs-down"
	default:
		return "unknown"
	}
}
