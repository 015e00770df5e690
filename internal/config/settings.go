// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the tunable game rules and startup options.
type Settings struct {
	GridSize     int    `yaml:"grid_size"`
	MinValue     int    `yaml:"min_value"`
	MaxValue     int    `yaml:"max_value"`
	TargetSum    int    `yaml:"target_sum"`
	MinSelection int    `yaml:"min_selection"`
	Duration     int    `yaml:"duration"` // seconds
	Policy       string `yaml:"policy"`   // "rectangle" or "path"
	Seed         int64  `yaml:"seed"`     // 0 picks one from the clock
	LogLevel     string `yaml:"log_level"`
	StartInMenu  bool   `yaml:"start_in_menu"`
}

// Default returns the rules of the classic game.
func Default() Settings {
	return Settings{
		GridSize:     15,
		MinValue:     1,
		MaxValue:     9,
		TargetSum:    10,
		MinSelection: 2,
		Duration:     90,
		Policy:       "rectangle",
		LogLevel:     "info",
	}
}

// Validate checks the settings for values the game cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.GridSize < 2:
		return fmt.Errorf("%w: grid_size %d < 2", ErrInvalidSettings, s.GridSize)
	case s.MinValue < 1:
		return fmt.Errorf("%w: min_value %d < 1", ErrInvalidSettings, s.MinValue)
	case s.MaxValue > 9:
		return fmt.Errorf("%w: max_value %d > 9", ErrInvalidSettings, s.MaxValue)
	case s.MinValue > s.MaxValue:
		return fmt.Errorf("%w: min_value %d > max_value %d", ErrInvalidSettings, s.MinValue, s.MaxValue)
	case s.TargetSum < 1:
		return fmt.Errorf("%w: target_sum %d < 1", ErrInvalidSettings, s.TargetSum)
	case s.MinSelection < 2:
		return fmt.Errorf("%w: min_selection %d < 2", ErrInvalidSettings, s.MinSelection)
	case s.Duration < 1:
		return fmt.Errorf("%w: duration %d < 1", ErrInvalidSettings, s.Duration)
	}
	return nil
}
