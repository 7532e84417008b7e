package world

import "testing"

func TestWallTileProperties(t *testing.T) {
	tile := Wall

	if tile.Char() != '#' {
		t.Errorf("Expected glyph '#', got %q", tile.Char())
	}
	if tile.Foreground() != "goldenrod" {
		t.Errorf("Expected foreground goldenrod, got %q", tile.Foreground())
	}
	if tile.Background() != "black" {
		t.Errorf("Expected background black, got %q", tile.Background())
	}
	want := "%c{goldenrod}%b{black}#%c{white}%b{black}"
	if got := tile.Representation(); got != want {
		t.Errorf("Representation() = %q, want %q", got, want)
	}
	if !tile.IsDiggable() {
		t.Error("Wall should be diggable")
	}
	if tile.IsWalkable() {
		t.Error("Wall should not be walkable")
	}
	if !tile.IsBlockingLight() {
		t.Error("Wall should block light")
	}
	if tile.Description() != "A cave wall" {
		t.Errorf("Unexpected description %q", tile.Description())
	}
}

func TestTileCatalog(t *testing.T) {
	tests := []struct {
		tile     Tile
		char     rune
		walkable bool
	}{
		{Unknown, ' ', false},
		{Wall, '#', false},
		{Floor, '.', true},
		{StairsUp, '<', true},
		{StairsDown, '>', true},
	}

	for _, tt := range tests {
		if tt.tile.Char() != tt.char {
			t.Errorf("%v: expected glyph %q, got %q", tt.tile, tt.char, tt.tile.Char())
		}
		if tt.tile.IsWalkable() != tt.walkable {
			t.Errorf("%v: expected walkable=%v", tt.tile, tt.walkable)
		}
	}
}

func TestOutOfRangeTileReadsAsUnknown(t *testing.T) {
	tile := Tile(200)
	if tile.Char() != ' ' || tile.Description() != "(unknown)" {
		t.Errorf("Expected unknown properties, got %q %q", tile.Char(), tile.Description())
	}
}

func TestCoordKey(t *testing.T) {
	c := Coord{X: 3, Y: -1, Z: 2}
	if c.Key() != "(3,-1,2)" {
		t.Errorf("Unexpected key %q", c.Key())
	}
}

func TestRandFuncWrapsIntoRange(t *testing.T) {
	second := RandFunc(func(n int) int { return 1 })
	negative := RandFunc(func(n int) int { return -1 })

	if got := Pick(second, []string{"a", "b", "c"}); got != "b" {
		t.Errorf("Expected second candidate, got %q", got)
	}
	if got := Pick(second, []string{"only"}); got != "only" {
		t.Errorf("Expected sole candidate, got %q", got)
	}
	if got := Pick(negative, []int{1, 2, 3}); got != 3 {
		t.Errorf("Expected last candidate for -1, got %d", got)
	}
}
