// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"

	"apple-game/pkg/render"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 850
	MaxDeltaTime = 0.06

	CellSize     = 35
	CellSpacing  = 2
	BoardOffsetY = 80
	CellBorder   = 1.0

	HUDMarginX    = 30
	HUDTopY       = 40
	TitleFontSize = 36
	HUDFontSize   = 20
	CellFontSize  = 16
	SmallFontSize = 14

	ButtonWidth  = 120
	ButtonHeight = 36

	ClickCooldown    = 150 // ms between button presses
	IndicatorRadius  = 8.0
	PulseAmplitude   = 0.3
	PulseDecayFactor = 8.0
)

const (
	StatusPrompt   = "Drag across apples that add up to 10."
	StatusGameOver = "Time is up!"
	NewGameLabel   = "New game"
	WindowTitle    = "Apple Game"
)

var (
	BackgroundColor = color.RGBA{250, 250, 245, 255}
	NormalCell      = render.CellPalette{
		Fill:   color.RGBA{0xf0, 0xf0, 0xf0, 255},
		Border: color.RGBA{0xcc, 0xcc, 0xcc, 255},
		Text:   color.RGBA{0x33, 0x33, 0x33, 255},
	}
	SelectedCell = render.CellPalette{
		Fill:   color.RGBA{0xaa, 0xde, 0x87, 255},
		Border: color.RGBA{0x88, 0x88, 0x88, 255},
		Text:   color.RGBA{0, 0, 0, 255},
	}
	TextColor        = color.RGBA{20, 20, 30, 255}
	TargetHitColor   = colornames.Forestgreen
	TargetMissColor  = colornames.Firebrick
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = render.Darken(ButtonColor, 0.8)
	ButtonTextColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	OverlayTextColor = color.RGBA{240, 240, 240, 255}
	RunningColor     = colornames.Seagreen
	WarningColor     = colornames.Orange
	EndedColor       = colornames.Crimson
)

// WarningSeconds is when the timer indicator turns to WarningColor.
const WarningSeconds = 10
