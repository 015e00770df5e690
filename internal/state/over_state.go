// internal/state/over_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"apple-game/internal/config"
	"apple-game/internal/ui"
)

var _ State = (*OverState)(nil)

// OverState shows the final score on top of the finished board.
type OverState struct {
	sm       *StateMachine
	previous *GameState
	faces    *ui.Faces
	newGame  *ui.Button
}

func NewOverState(sm *StateMachine, prev *GameState, faces *ui.Faces) *OverState {
	return &OverState{
		sm:       sm,
		previous: prev,
		faces:    faces,
		newGame: ui.NewButton(
			(config.ScreenWidth-config.ButtonWidth)/2,
			config.ScreenHeight/2+40,
			config.NewGameLabel,
			faces.HUD,
		),
	}
}

func (s *OverState) Enter() {}

func (s *OverState) Update(deltaTime float64) {
	if s.newGame.Clicked() || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.previous.Restart()
		s.sm.SetState(s.previous)
	}
}

func (s *OverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	mid := config.ScreenHeight / 2
	ui.DrawCentered(screen, config.StatusGameOver, s.faces.Title,
		image.Rect(0, mid-110, config.ScreenWidth, mid-60), config.OverlayTextColor)
	ui.DrawCentered(screen, fmt.Sprintf("Final score: %d", s.previous.session.Score()), s.faces.HUD,
		image.Rect(0, mid-50, config.ScreenWidth, mid-10), config.OverlayTextColor)
	s.newGame.Draw(screen)
}

func (s *OverState) Exit() {}
