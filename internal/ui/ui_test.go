package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguecave/internal/cave"
	"github.com/samdwyer/roguecave/internal/item"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom failed: %v", err)
	}
	sim.SetSize(80, 30)
	t.Cleanup(screen.Close)
	return screen
}

func testCave() *cave.Cave {
	return cave.New(context.Background(), cave.Template{
		Width:     4,
		Height:    5,
		Depth:     2,
		RandFunc:  func(n int) int { return 0 },
		ItemTypes: item.Distribution{"rock": 1},
	})
}

func cellRune(s *Screen, x, y int) rune {
	r, _, _, _ := s.screen.GetContent(x, y)
	return r
}

func TestRenderLayer(t *testing.T) {
	screen := newTestScreen(t)
	c := testCave()

	NewRenderer(screen).RenderLayer(c, 0)

	if got := cellRune(screen, 0, 0); got != '#' {
		t.Errorf("corner = %q, want '#'", got)
	}
	// Stairs down sit on the first shared floor and the rock is placed on
	// the first walkable cell, so the item hides the stairs.
	if got := cellRune(screen, 1, 1); got != '*' {
		t.Errorf("cell (1,1) = %q, want rock glyph", got)
	}
	if got := cellRune(screen, 0, 5); got != 'l' {
		t.Errorf("status line starts with %q, want 'l'", got)
	}
}

func TestRenderMissingLayer(t *testing.T) {
	screen := newTestScreen(t)

	NewRenderer(screen).RenderLayer(testCave(), 9)

	if got := cellRune(screen, 0, 0); got != ' ' {
		t.Errorf("empty render drew %q", got)
	}
}

func TestViewerLayerKeys(t *testing.T) {
	screen := newTestScreen(t)
	v := NewViewer(screen, testCave())

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want int
	}{
		{"up at top stays", tcell.NewEventKey(tcell.KeyRune, '<', tcell.ModNone), 0},
		{"down", tcell.NewEventKey(tcell.KeyRune, '>', tcell.ModNone), 1},
		{"down at bottom stays", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), 1},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.handleEvent(tt.ev)
			if v.Layer() != tt.want {
				t.Errorf("layer = %d, want %d", v.Layer(), tt.want)
			}
			if !v.running {
				t.Error("viewer stopped on a layer key")
			}
		})
	}
	if v.switches != 2 {
		t.Errorf("switches = %d, want 2", v.switches)
	}
}

func TestViewerQuitKeys(t *testing.T) {
	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	}

	for _, ev := range keys {
		v := NewViewer(newTestScreen(t), testCave())
		v.handleEvent(ev)
		if v.running {
			t.Errorf("key %v did not stop the viewer", ev.Name())
		}
	}
}

func TestWriteLayers(t *testing.T) {
	var buf strings.Builder
	if err := WriteLayers(&buf, testCave()); err != nil {
		t.Fatalf("WriteLayers failed: %v", err)
	}

	want := "layer 0 (1 items)\n" +
		"####\n" +
		"#*.#\n" +
		"#..#\n" +
		"#..#\n" +
		"####\n" +
		"layer 1 (1 items)\n" +
		"####\n" +
		"#*.#\n" +
		"#..#\n" +
		"#..#\n" +
		"####\n"
	if buf.String() != want {
		t.Errorf("WriteLayers output:\n%s\nwant:\n%s", buf.String(), want)
	}
}
