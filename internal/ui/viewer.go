package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguecave/internal/cave"
	"github.com/samdwyer/roguecave/internal/telemetry"
)

// Viewer is an interactive layer-by-layer cave preview.
type Viewer struct {
	screen   *Screen
	renderer *Renderer
	cave     *cave.Cave
	layer    int
	switches int
	running  bool
}

// NewViewer creates a viewer showing the entrance layer of c.
func NewViewer(screen *Screen, c *cave.Cave) *Viewer {
	layer := c.Entrance().Z
	if layer < 0 || layer >= c.Map().Depth() {
		layer = 0
	}
	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen),
		cave:     c,
		layer:    layer,
		running:  true,
	}
}

// Layer returns the layer currently shown.
func (v *Viewer) Layer() int {
	return v.layer
}

// Run draws and handles input until the user quits, then closes the screen.
func (v *Viewer) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("ui").Start(ctx, "viewer.run")
	defer span.End()

	for v.running {
		v.renderer.RenderLayer(v.cave, v.layer)
		v.handleEvent(v.screen.PollEvent())
	}

	span.SetAttributes(attribute.Int("viewer.layer_switches", v.switches))
	v.screen.Close()
	return nil
}

// handleEvent processes a single input event.
func (v *Viewer) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// PollEvent returns nil once the screen is finalized.
		v.running = false
	}
}

func (v *Viewer) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyPgUp:
		v.moveLayer(-1)
	case tcell.KeyPgDn:
		v.moveLayer(1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case '<':
			v.moveLayer(-1)
		case '>':
			v.moveLayer(1)
		}
	}
}

// moveLayer shows the layer dz away, staying within the map.
func (v *Viewer) moveLayer(dz int) {
	next := v.layer + dz
	if next < 0 || next >= v.cave.Map().Depth() {
		return
	}
	v.layer = next
	v.switches++
}
