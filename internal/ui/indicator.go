// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"apple-game/internal/config"
)

// StateIndicator is a dot showing the session state. It pulses briefly after
// every pop.
type StateIndicator struct {
	X, Y        float32
	Radius      float32
	LastPulseAt time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Pulse restarts the pulse animation.
func (i *StateIndicator) Pulse() {
	i.LastPulseAt = time.Now()
}

// Draw renders the dot in stateColor.
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	elapsed := time.Since(i.LastPulseAt).Seconds()
	scale := 1.0 + config.PulseAmplitude*math.Exp(-elapsed*config.PulseDecayFactor)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.NormalCell.Border, true)
}

// StateColor picks the indicator colour for the remaining time.
func StateColor(remaining int, ended bool) color.Color {
	switch {
	case ended:
		return config.EndedColor
	case remaining <= config.WarningSeconds:
		return config.WarningColor
	default:
		return config.RunningColor
	}
}
