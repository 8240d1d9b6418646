package core

import "fmt"

// Color is an opaque 24-bit RGB display attribute.
// It satisfies image/color.Color so surfaces can be encoded directly.
type Color struct {
	R, G, B uint8
}

// Predefined colors for the demo.
var (
	ColorBlack  = Color{0, 0, 0}
	ColorWhite  = Color{255, 255, 255}
	ColorRed    = Color{255, 0, 0}
	ColorGreen  = Color{0, 255, 0}
	ColorBlue   = Color{0, 0, 255}
	ColorYellow = Color{255, 255, 0}
	ColorPurple = Color{128, 0, 128}
)

// BallPalette is the fixed set of colors a ball may be created with.
var BallPalette = []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorPurple}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color as "#rrggbb", the form lipgloss accepts for true color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
