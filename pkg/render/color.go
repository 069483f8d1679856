package render

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// NoFill is the zero-alpha color; passing it as a polygon fill draws the
// outline only.
var NoFill = Color{}

// Colors for convenience
var (
	ColorBlack = color.RGBA{0, 0, 0, 255}
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{r, g, b, a}
}

// ParseHex parses a "#RRGGBB" hex string into an opaque color.
// The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("render: invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("render: invalid hex color %q: %w", s, err)
	}
	return RGB(r, g, b), nil
}

// Hex formats a color as a "#rrggbb" string. Alpha is dropped.
func Hex(c Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Fade linearly interpolates each RGB channel between bright (alpha=1) and
// dark (alpha=0). Alpha is clamped to [0, 1] and channels always land in
// [0, 255]. The result is opaque.
func Fade(bright, dark Color, alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	mix := func(b, d uint8) uint8 {
		v := math.Round(float64(b)*alpha + float64(d)*(1-alpha))
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return Color{R: mix(bright.R, dark.R), G: mix(bright.G, dark.G), B: mix(bright.B, dark.B), A: 255}
}
