// internal/app/game.go
package app

import (
	"fmt"

	"apple-game/internal/board"
	"apple-game/internal/config"
	"apple-game/internal/event"
	"apple-game/internal/rules"
	"apple-game/internal/utils"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	Idle Phase = iota
	Running
	Ended
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Snapshot is what the UI needs to draw a freshly dealt game.
type Snapshot struct {
	Board     [][]int
	Score     int
	Remaining int
}

// Outcome is the result of finishing a drag.
type Outcome struct {
	Accepted   bool
	Reason     rules.Reason
	Sum        int
	Cleared    []board.Cell
	ScoreDelta int
	Score      int
}

// Game holds one player's session: board, current drag, score and clock.
// It is not safe for concurrent use; the host loop serializes all calls.
type Game struct {
	settings   config.Settings
	policy     rules.Policy
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher

	board     *board.Board
	selection *rules.Selection
	clock     *Clock
	score     int
	phase     Phase
}

// NewGame creates an idle session. Call Start to deal the first board.
func NewGame(settings config.Settings, rng *utils.PRNGService, dispatcher *event.Dispatcher) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	policy, err := rules.ByName(settings.Policy, rules.Rules{
		Target:   settings.TargetSum,
		MinCells: settings.MinSelection,
	})
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = utils.NewPRNGService(settings.Seed)
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Game{
		settings:   settings,
		policy:     policy,
		rng:        rng,
		dispatcher: dispatcher,
		board:      board.FromRows(make([][]int, settings.GridSize)),
		selection:  rules.NewSelection(),
		clock:      NewClock(settings.Duration),
		phase:      Idle,
	}, nil
}

// Start deals a fresh board, zeroes the score and restarts the clock. It may
// be called in any phase.
func (g *Game) Start() Snapshot {
	s := g.settings
	g.board = board.New(s.GridSize, s.MinValue, s.MaxValue, g.rng)
	g.selection.Reset()
	g.clock.Reset()
	g.score = 0
	g.phase = Running

	g.dispatcher.Dispatch(event.Event{
		Type: event.GameStarted,
		Data: event.GameStartedData{
			Seed:     g.rng.Seed(),
			Policy:   g.policy.Name(),
			Duration: g.clock.Duration(),
		},
	})
	return g.Snapshot()
}

// BeginSelection starts a drag at c. Cells outside the grid and cleared cells
// cannot start a drag.
func (g *Game) BeginSelection(c board.Cell) bool {
	if !g.selectable(c) {
		return false
	}
	g.policy.Begin(g.selection, g.board, c)
	return true
}

// ExtendSelection moves the active drag to c and reports whether the
// selection changed.
func (g *Game) ExtendSelection(c board.Cell) bool {
	if !g.selection.Active() || !g.selectable(c) {
		return false
	}
	return g.policy.Extend(g.selection, g.board, c)
}

// EndSelection validates the drag, clears the cells of an accepted selection
// and discards the selection either way.
func (g *Game) EndSelection() Outcome {
	if g.phase != Running || !g.selection.Active() {
		g.selection.Reset()
		return Outcome{Score: g.score}
	}

	verdict := g.policy.Validate(g.selection, g.board)
	selected := g.selection.Cells()
	g.selection.Reset()

	out := Outcome{
		Accepted: verdict.Accepted,
		Reason:   verdict.Reason,
		Sum:      verdict.Sum,
	}
	if !verdict.Accepted {
		out.Score = g.score
		g.dispatcher.Dispatch(event.Event{
			Type: event.SelectionRejected,
			Data: event.SelectionData{
				Cells:  selected,
				Sum:    verdict.Sum,
				Reason: verdict.Reason.String(),
				Score:  g.score,
			},
		})
		return out
	}

	out.ScoreDelta = g.board.Clear(verdict.Cells)
	out.Cleared = verdict.Cells
	g.score += out.ScoreDelta
	out.Score = g.score

	g.dispatcher.Dispatch(event.Event{
		Type: event.SelectionAccepted,
		Data: event.SelectionData{
			Cells:      out.Cleared,
			Sum:        verdict.Sum,
			Reason:     verdict.Reason.String(),
			ScoreDelta: out.ScoreDelta,
			Score:      g.score,
		},
	})
	return out
}

// Tick advances the clock by one second while the session runs. ended is
// true exactly once, on the tick that runs the clock out.
func (g *Game) Tick() (remaining int, ended bool) {
	if g.phase != Running {
		return g.clock.Remaining(), false
	}
	remaining, ended = g.clock.Tick()
	if ended {
		g.phase = Ended
		g.selection.Reset()
		g.dispatcher.Dispatch(event.Event{
			Type: event.SessionEnded,
			Data: event.SessionEndedData{
				Score:     g.score,
				Remaining: g.board.Remaining(),
			},
		})
	}
	return remaining, ended
}

func (g *Game) selectable(c board.Cell) bool {
	return g.phase == Running && g.board.Contains(c) && g.board.ValueAt(c) != 0
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Score() int {
	return g.score
}

// Remaining is the number of seconds left on the clock.
func (g *Game) Remaining() int {
	return g.clock.Remaining()
}

// Board gives read access to the current grid.
func (g *Game) Board() board.Reader {
	return g.board
}

// ApplesLeft counts the digits still on the board.
func (g *Game) ApplesLeft() int {
	return g.board.Remaining()
}

// Selecting reports whether a drag is in progress.
func (g *Game) Selecting() bool {
	return g.selection.Active()
}

// IsSelected reports whether c belongs to the current drag.
func (g *Game) IsSelected(c board.Cell) bool {
	return g.selection.Contains(c)
}

// Selection returns the cells of the current drag.
func (g *Game) Selection() []board.Cell {
	return g.selection.Cells()
}

// PendingSum is the sum under the current drag, for live feedback.
func (g *Game) PendingSum() int {
	return rules.Sum(g.selection, g.board)
}

func (g *Game) TargetSum() int {
	return g.settings.TargetSum
}

func (g *Game) PolicyName() string {
	return g.policy.Name()
}

func (g *Game) Seed() int64 {
	return g.rng.Seed()
}

// Snapshot copies the current board together with score and time.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:     g.board.Snapshot(),
		Score:     g.score,
		Remaining: g.clock.Remaining(),
	}
}
