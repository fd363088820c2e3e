package entity

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Common colors used by builders and the lighting rig
var (
	White = color.RGBA{255, 255, 255, 255}
	Black = color.RGBA{0, 0, 0, 255}
)

// ParseColor parses "#rgb" or "#rrggbb" (case-insensitive) into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}

// Hex converts 0xRRGGBB into an opaque color.
func Hex(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

// Background is the clear color of the render surface.
// Transparent backgrounds clear to zero alpha and let the window show through.
type Background struct {
	Color       color.RGBA
	Transparent bool
}

// ParseBackground accepts a hex color or the keyword "transparent".
func ParseBackground(s string) (Background, error) {
	if strings.EqualFold(strings.TrimSpace(s), "transparent") {
		return Background{Transparent: true}, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return Background{}, err
	}
	return Background{Color: c}, nil
}
