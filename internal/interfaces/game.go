// internal/interfaces/game.go
package interfaces

import (
	"apple-game/internal/app"
	"apple-game/internal/board"
)

// Session is what the screens need from a running game.
type Session interface {
	Start() app.Snapshot
	BeginSelection(c board.Cell) bool
	ExtendSelection(c board.Cell) bool
	EndSelection() app.Outcome
	Tick() (remaining int, ended bool)

	Phase() app.Phase
	Score() int
	Remaining() int
	ApplesLeft() int
	Board() board.Reader
	Selecting() bool
	IsSelected(c board.Cell) bool
	PendingSum() int
	TargetSum() int
}

var _ Session = (*app.Game)(nil)
