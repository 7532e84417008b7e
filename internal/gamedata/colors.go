package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", digits)
	}
	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// ParseColor resolves a W3C color name ("goldenrod") or a hex code.
func ParseColor(value string) (tcell.Color, error) {
	if strings.HasPrefix(value, "#") {
		return ParseHexColor(value)
	}
	color := tcell.GetColor(strings.ToLower(value))
	if color == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color name: %s", value)
	}
	return color, nil
}

// ColorOr resolves value, returning fallback when it cannot be parsed.
func ColorOr(value string, fallback tcell.Color) tcell.Color {
	color, err := ParseColor(value)
	if err != nil {
		return fallback
	}
	return color
}
