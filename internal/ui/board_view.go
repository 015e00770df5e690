// internal/ui/board_view.go
package ui

import (
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"apple-game/internal/board"
	"apple-game/internal/config"
	"apple-game/internal/utils"
)

// BoardSource is what the board view reads each frame.
type BoardSource interface {
	Board() board.Reader
	IsSelected(c board.Cell) bool
}

// BoardView draws the grid of digits. Cleared cells are not drawn.
type BoardView struct {
	Layout   utils.BoardLayout
	fontFace font.Face
	labels   [10]string
}

func NewBoardView(layout utils.BoardLayout, face font.Face) *BoardView {
	v := &BoardView{Layout: layout, fontFace: face}
	for d := range v.labels {
		v.labels[d] = strconv.Itoa(d)
	}
	return v
}

// CellAt maps a cursor position to a board cell.
func (v *BoardView) CellAt(x, y int) (board.Cell, bool) {
	return v.Layout.ScreenToCell(float64(x), float64(y))
}

func (v *BoardView) Draw(screen *ebiten.Image, src BoardSource) {
	b := src.Board()
	size := float32(v.Layout.CellSize)
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			cell := board.Cell{Row: r, Col: c}
			value := b.ValueAt(cell)
			if value == 0 {
				continue
			}

			palette := config.NormalCell
			if src.IsSelected(cell) {
				palette = config.SelectedCell
			}

			x, y := v.Layout.CellToScreen(cell)
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, palette.Fill, false)
			vector.StrokeRect(screen, float32(x), float32(y), size, size, config.CellBorder, palette.Border, false)

			rect := image.Rect(int(x), int(y), int(x)+int(size), int(y)+int(size))
			DrawCentered(screen, v.label(value), v.fontFace, rect, palette.Text)
		}
	}
}

func (v *BoardView) label(value int) string {
	if value >= 0 && value < len(v.labels) {
		return v.labels[value]
	}
	return strconv.Itoa(value)
}
