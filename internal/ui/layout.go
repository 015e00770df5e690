// internal/ui/layout.go
package ui

import "apple-game/internal/utils"

const statusGap = 40

// Layout places the board and the widgets around it.
type Layout struct {
	Board utils.BoardLayout
}

func NewLayout(gridSize int) Layout {
	return Layout{Board: utils.NewBoardLayout(gridSize)}
}

// StatusY is the baseline of the status line under the board.
func (l Layout) StatusY() int {
	return int(l.Board.OriginY+l.Board.Span()) + statusGap
}
