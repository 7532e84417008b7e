package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguecave/internal/cave"
	"github.com/samdwyer/roguecave/internal/gamedata"
	"github.com/samdwyer/roguecave/internal/world"
)

// Renderer draws cave layers to a screen.
type Renderer struct {
	screen *Screen
	styles map[world.Tile]tcell.Style
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{
		screen: screen,
		styles: make(map[world.Tile]tcell.Style),
	}
}

// RenderLayer draws layer z of c with items on top and a status line below
// the map.
func (r *Renderer) RenderLayer(c *cave.Cave, z int) {
	r.screen.Clear()

	m := c.Map()
	layer := m.Layer(z)
	if layer == nil {
		r.screen.Show()
		return
	}

	for y := 0; y < layer.Height; y++ {
		for x := 0; x < layer.Width; x++ {
			tile := layer.Get(x, y)
			r.screen.SetContent(x, y, tile.Char(), r.tileStyle(tile))
		}
	}

	// The most recently placed item of a stack is drawn.
	items := c.Items(z)
	for pos, stack := range items {
		if len(stack) == 0 {
			continue
		}
		top := stack[len(stack)-1]
		style := tcell.StyleDefault.
			Background(tcell.ColorBlack).
			Foreground(gamedata.ColorOr(top.Color, tcell.ColorWhite))
		r.screen.SetContent(pos.X, pos.Y, top.Glyph, style)
	}

	status := fmt.Sprintf("layer %d/%d  %dx%d  items %d  [<] up  [>] down  [q] quit",
		z+1, m.Depth(), m.Width(), m.Height(), items.Count())
	r.screen.DrawText(0, layer.Height, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.Show()
}

// tileStyle returns the catalog colors of a tile, resolved once per tile.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	if style, ok := r.styles[tile]; ok {
		return style
	}
	style := tcell.StyleDefault.
		Foreground(gamedata.ColorOr(tile.Foreground(), tcell.ColorWhite)).
		Background(gamedata.ColorOr(tile.Background(), tcell.ColorBlack))
	r.styles[tile] = style
	return style
}
