// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"apple-game/internal/config"
	"apple-game/internal/ui"
)

// MenuState is the title screen. Space or the start button opens next.
type MenuState struct {
	sm    *StateMachine
	next  State
	faces *ui.Faces
	start *ui.Button
}

func NewMenuState(sm *StateMachine, next State, faces *ui.Faces) *MenuState {
	return &MenuState{
		sm:    sm,
		next:  next,
		faces: faces,
		start: ui.NewButton(
			(config.ScreenWidth-config.ButtonWidth)/2,
			config.ScreenHeight/2,
			"Start",
			faces.HUD,
		),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || m.start.Clicked() {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := image.Rect(0, config.ScreenHeight/3, config.ScreenWidth, config.ScreenHeight/3+60)
	ui.DrawCentered(screen, config.WindowTitle, m.faces.Title, title, config.TextColor)
	text.Draw(screen, "Make 10 before the time runs out. Press Space to start.", m.faces.Small,
		config.HUDMarginX, config.ScreenHeight/2-30, config.TextColor)
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {}
