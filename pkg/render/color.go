// pkg/render/color.go
package render

import "image/color"

// CellPalette holds the colours of one cell look.
type CellPalette struct {
	Fill   color.RGBA
	Border color.RGBA
	Text   color.RGBA
}

// Darken scales the brightness of c by factor, keeping alpha. Factors outside
// [0, 1] are clamped.
func Darken(c color.RGBA, factor float64) color.RGBA {
	factor = min(max(factor, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
