// internal/utils/coords.go
package utils

import (
	"math"

	"apple-game/internal/board"
	"apple-game/internal/config"
)

// maxBoardSpan keeps large grids inside the window.
const maxBoardSpan = config.ScreenWidth - 2*config.HUDMarginX

// BoardLayout maps between screen pixels and board cells.
type BoardLayout struct {
	OriginX, OriginY float64
	CellSize         float64
	Spacing          float64
	Size             int
}

// NewBoardLayout centres a size×size board horizontally below the HUD,
// shrinking cells when the default size would not fit.
func NewBoardLayout(size int) BoardLayout {
	cell := float64(config.CellSize)
	spacing := float64(config.CellSpacing)
	if span := float64(size)*(cell+spacing) - spacing; span > maxBoardSpan {
		cell = (maxBoardSpan+spacing)/float64(size) - spacing
	}
	l := BoardLayout{
		CellSize: cell,
		Spacing:  spacing,
		Size:     size,
		OriginY:  config.BoardOffsetY,
	}
	l.OriginX = (float64(config.ScreenWidth) - l.Span()) / 2
	return l
}

// Span is the width (and height) of the drawn board in pixels.
func (l BoardLayout) Span() float64 {
	if l.Size == 0 {
		return 0
	}
	return float64(l.Size)*(l.CellSize+l.Spacing) - l.Spacing
}

// CellToScreen returns the top-left pixel of c.
func (l BoardLayout) CellToScreen(c board.Cell) (float64, float64) {
	pitch := l.CellSize + l.Spacing
	return l.OriginX + float64(c.Col)*pitch, l.OriginY + float64(c.Row)*pitch
}

// ScreenToCell returns the cell under a pixel. Pixels outside the board or
// in the gaps between cells map to no cell.
func (l BoardLayout) ScreenToCell(x, y float64) (board.Cell, bool) {
	lx, ly := x-l.OriginX, y-l.OriginY
	if lx < 0 || ly < 0 {
		return board.Cell{}, false
	}
	pitch := l.CellSize + l.Spacing
	col, row := int(math.Floor(lx/pitch)), int(math.Floor(ly/pitch))
	if row >= l.Size || col >= l.Size {
		return board.Cell{}, false
	}
	if lx-float64(col)*pitch >= l.CellSize || ly-float64(row)*pitch >= l.CellSize {
		return board.Cell{}, false
	}
	return board.Cell{Row: row, Col: col}, true
}
