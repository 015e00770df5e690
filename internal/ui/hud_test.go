package ui

import (
	"testing"

	"apple-game/internal/config"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		accepted bool
		delta    int
		sum      int
		reason   string
		want     string
	}{
		{"pop", true, 4, 10, "ok", "Pop! +4"},
		{"wrong sum", false, 0, 12, "wrong sum", "No pop: wrong sum (sum 12, need 10)"},
		{"no drag", false, 0, 0, "", config.StatusPrompt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.accepted, tt.delta, tt.sum, 10, tt.reason); got != tt.want {
				t.Errorf("StatusFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateColor(t *testing.T) {
	if StateColor(60, false) != config.RunningColor {
		t.Error("plenty of time should use RunningColor")
	}
	if StateColor(config.WarningSeconds, false) != config.WarningColor {
		t.Error("last seconds should use WarningColor")
	}
	if StateColor(0, true) != config.EndedColor {
		t.Error("ended session should use EndedColor")
	}
}
