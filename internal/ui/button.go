// internal/ui/button.go
package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"apple-game/internal/config"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect          image.Rectangle
	Text          string
	fontFace      font.Face
	LastClickTime time.Time
}

// NewButton creates a button of the default size with its top-left at (x, y).
func NewButton(x, y int, label string, face font.Face) *Button {
	return &Button{
		Rect:     image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight),
		Text:     label,
		fontFace: face,
	}
}

// Contains reports whether the point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports a left click on the button this frame, honouring the
// click cooldown.
func (b *Button) Clicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	if !b.Contains(ebiten.CursorPosition()) {
		return false
	}
	if time.Since(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// Draw renders the button, lighter while the cursor hovers it.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.NormalCell.Border, true)
	DrawCentered(screen, b.Text, b.fontFace, b.Rect, config.ButtonTextColor)
}
