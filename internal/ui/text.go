// internal/ui/text.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawCentered draws s centred inside rect.
func DrawCentered(screen *ebiten.Image, s string, face font.Face, rect image.Rectangle, clr color.Color) {
	b := text.BoundString(face, s)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2 - b.Min.X
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// DrawRightAligned draws s so that it ends at x.
func DrawRightAligned(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Dx(), y, clr)
}
