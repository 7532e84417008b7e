package ui

import (
	"bufio"
	"fmt"
	"io"

	"github.com/samdwyer/roguecave/internal/cave"
)

// WriteLayers prints every layer of c as rows of glyphs, items overlaid on
// their tiles, each layer preceded by a header line.
func WriteLayers(w io.Writer, c *cave.Cave) error {
	bw := bufio.NewWriter(w)
	m := c.Map()

	for z := 0; z < m.Depth(); z++ {
		items := c.Items(z)
		fmt.Fprintf(bw, "layer %d (%d items)\n", z, items.Count())

		row := make([]rune, m.Width())
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				row[x] = m.Tile(x, y, z).Char()
			}
			for pos, stack := range items {
				if pos.Y == y && len(stack) > 0 {
					row[pos.X] = stack[len(stack)-1].Glyph
				}
			}
			bw.WriteString(string(row))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
