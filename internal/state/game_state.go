// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"apple-game/internal/app"
	"apple-game/internal/config"
	"apple-game/internal/event"
	"apple-game/internal/interfaces"
	"apple-game/internal/ui"
)

// GameState is the playing screen. It turns pointer and frame events into
// session calls and hands over to OverState when the clock runs out.
type GameState struct {
	sm        *StateMachine
	session   interfaces.Session
	faces     *ui.Faces
	boardView *ui.BoardView
	hud       *ui.HUD
	newGame   *ui.Button
	status    string
	tickAccum float64
}

func NewGameState(sm *StateMachine, session interfaces.Session, layout ui.Layout, faces *ui.Faces, dispatcher *event.Dispatcher) *GameState {
	statusY := layout.StatusY()
	g := &GameState{
		sm:        sm,
		session:   session,
		faces:     faces,
		boardView: ui.NewBoardView(layout.Board, faces.Cell),
		hud:       ui.NewHUD(faces, statusY),
		newGame: ui.NewButton(
			config.ScreenWidth-config.HUDMarginX-config.ButtonWidth,
			statusY+config.ButtonHeight/2,
			config.NewGameLabel,
			faces.HUD,
		),
		status: config.StatusPrompt,
	}
	dispatcher.Subscribe(event.SessionEnded, g)
	return g
}

// OnEvent switches to the game-over screen when the session ends.
func (g *GameState) OnEvent(e event.Event) {
	if e.Type == event.SessionEnded {
		g.status = config.StatusGameOver
		g.sm.SetState(NewOverState(g.sm, g, g.faces))
	}
}

// Enter deals the first board when the session has not started yet.
func (g *GameState) Enter() {
	if g.session.Phase() == app.Idle {
		g.Restart()
	}
}

// Restart begins a new session on a fresh board.
func (g *GameState) Restart() {
	g.session.Start()
	g.tickAccum = 0
	g.status = config.StatusPrompt
}

func (g *GameState) Update(deltaTime float64) {
	if g.newGame.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Restart()
		return
	}

	g.handlePointer()

	g.tickAccum += deltaTime
	for g.tickAccum >= 1 && g.session.Phase() == app.Running {
		g.tickAccum--
		g.session.Tick()
	}
}

func (g *GameState) handlePointer() {
	x, y := ebiten.CursorPosition()
	cell, onBoard := g.boardView.CellAt(x, y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if onBoard {
			g.session.BeginSelection(cell)
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		if !g.session.Selecting() {
			return
		}
		out := g.session.EndSelection()
		g.status = ui.StatusFor(out.Accepted, out.ScoreDelta, out.Sum, g.session.TargetSum(), out.Reason.String())
		if out.Accepted {
			g.hud.Indicator.Pulse()
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if onBoard && g.session.Selecting() {
			g.session.ExtendSelection(cell)
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.boardView.Draw(screen, g.session)
	g.hud.Draw(screen, ui.HUDState{
		Score:      g.session.Score(),
		Remaining:  g.session.Remaining(),
		ApplesLeft: g.session.ApplesLeft(),
		Selecting:  g.session.Selecting(),
		PendingSum: g.session.PendingSum(),
		TargetSum:  g.session.TargetSum(),
		Status:     g.status,
		Ended:      g.session.Phase() == app.Ended,
	})
	g.newGame.Draw(screen)
}

func (g *GameState) Exit() {}
