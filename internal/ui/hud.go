// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"apple-game/internal/config"
)

// HUDState is the data shown around the board.
type HUDState struct {
	Score      int
	Remaining  int
	ApplesLeft int
	Selecting  bool
	PendingSum int
	TargetSum  int
	Status     string
	Ended      bool
}

// HUD draws the score and time bar above the board and the status line
// below it.
type HUD struct {
	fontFace  font.Face
	smallFace font.Face
	Indicator *StateIndicator
	StatusY   int
}

func NewHUD(faces *Faces, statusY int) *HUD {
	return &HUD{
		fontFace:  faces.HUD,
		smallFace: faces.Small,
		Indicator: NewStateIndicator(
			float32(config.ScreenWidth/2),
			float32(config.HUDTopY-6),
			config.IndicatorRadius,
		),
		StatusY: statusY,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, s HUDState) {
	text.Draw(screen, fmt.Sprintf("Score: %d", s.Score), h.fontFace, config.HUDMarginX, config.HUDTopY, config.TextColor)
	DrawRightAligned(screen, fmt.Sprintf("Time left: %d", s.Remaining), h.fontFace,
		config.ScreenWidth-config.HUDMarginX, config.HUDTopY, config.TextColor)
	h.Indicator.Draw(screen, StateColor(s.Remaining, s.Ended))

	text.Draw(screen, s.Status, h.smallFace, config.HUDMarginX, h.StatusY, config.TextColor)
	if s.Selecting {
		var sumColor color.Color = config.TargetMissColor
		if s.PendingSum == s.TargetSum {
			sumColor = config.TargetHitColor
		}
		DrawRightAligned(screen, fmt.Sprintf("Sum: %d / %d", s.PendingSum, s.TargetSum), h.fontFace,
			config.ScreenWidth-config.HUDMarginX, h.StatusY, sumColor)
	} else {
		DrawRightAligned(screen, fmt.Sprintf("Apples: %d", s.ApplesLeft), h.smallFace,
			config.ScreenWidth-config.HUDMarginX, h.StatusY, config.TextColor)
	}
}

// StatusFor turns the result of a drag into a status line.
func StatusFor(accepted bool, delta, sum, target int, reason string) string {
	if accepted {
		return fmt.Sprintf("Pop! +%d", delta)
	}
	if reason == "" {
		return config.StatusPrompt
	}
	return fmt.Sprintf("No pop: %s (sum %d, need %d)", reason, sum, target)
}
