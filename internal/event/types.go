// internal/event/types.go
package event

import "apple-game/internal/board"

const (
	GameStarted       EventType = "GameStarted"       // new board dealt
	SelectionAccepted EventType = "SelectionAccepted" // pop
	SelectionRejected EventType = "SelectionRejected"
	SessionEnded      EventType = "SessionEnded" // clock ran out
)

// GameStartedData is the payload of GameStarted.
type GameStartedData struct {
	Seed     int64
	Policy   string
	Duration int
}

// SelectionData is the payload of SelectionAccepted and SelectionRejected.
type SelectionData struct {
	Cells      []board.Cell
	Sum        int
	Reason     string
	ScoreDelta int
	Score      int
}

// SessionEndedData is the payload of SessionEnded.
type SessionEndedData struct {
	Score     int
	Remaining int // digits left on the board
}
