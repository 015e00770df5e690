// internal/app/log_listener.go
package app

import (
	"github.com/rs/zerolog"

	"apple-game/internal/event"
)

// LogListener writes session events to a zerolog logger.
type LogListener struct {
	logger zerolog.Logger
}

func NewLogListener(logger zerolog.Logger) *LogListener {
	return &LogListener{logger: logger}
}

// Attach subscribes the listener to every session event.
func (l *LogListener) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l,
		event.GameStarted,
		event.SelectionAccepted,
		event.SelectionRejected,
		event.SessionEnded,
	)
}

func (l *LogListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.GameStartedData:
		l.logger.Info().
			Int64("seed", data.Seed).
			Str("policy", data.Policy).
			Int("duration", data.Duration).
			Msg("game started")
	case event.SelectionData:
		if e.Type == event.SelectionRejected {
			l.logger.Debug().
				Int("cells", len(data.Cells)).
				Int("sum", data.Sum).
				Str("reason", data.Reason).
				Msg("selection rejected")
			return
		}
		l.logger.Info().
			Int("cells", len(data.Cells)).
			Int("delta", data.ScoreDelta).
			Int("score", data.Score).
			Msg("pop")
	case event.SessionEndedData:
		l.logger.Info().
			Int("score", data.Score).
			Int("apples_left", data.Remaining).
			Msg("time is up")
	default:
		l.logger.Debug().Str("type", string(e.Type)).Msg("event")
	}
}
