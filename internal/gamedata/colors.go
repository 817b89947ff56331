package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" (the # is optional) to a tcell colour.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}

// Dim scales a colour toward black. Brightness is clamped to [0, 1].
func Dim(c tcell.Color, brightness float64) tcell.Color {
	brightness = min(max(brightness, 0), 1)
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}
	scale := func(v int32) int32 { return int32(float64(v) * brightness) }
	return tcell.NewRGBColor(scale(r), scale(g), scale(b))
}
