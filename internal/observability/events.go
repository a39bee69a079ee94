package observability

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/charsim/internal/game/character"
)

// EventLogger is a character.Listener that writes death and level-up events
// to a structured logger.
type EventLogger struct {
	logger *zap.Logger
}

var _ character.Listener = (*EventLogger)(nil)

// NewEventLogger creates an EventLogger.
//
// Precondition: logger must be non-nil.
func NewEventLogger(logger *zap.Logger) *EventLogger {
	if logger == nil {
		panic("observability: NewEventLogger precondition violated: logger must be non-nil")
	}
	return &EventLogger{logger: logger}
}

// CharacterDied logs the death of c.
func (e *EventLogger) CharacterDied(c *character.Character) {
	fields := []zap.Field{
		zap.String("name", c.Name()),
		zap.Stringer("id", c.ID()),
		zap.Int("level", c.Level()),
	}
	if killer := c.LastAttacker(); killer != nil {
		fields = append(fields, zap.String("killed_by", killer.Name()))
	}
	e.logger.Info("character died", fields...)
}

// CharacterLeveled logs that c reached level.
func (e *EventLogger) CharacterLeveled(c *character.Character, level int) {
	e.logger.Info("character leveled up",
		zap.String("name", c.Name()),
		zap.Stringer("id", c.ID()),
		zap.Int("level", level),
		zap.Int("hit_points", c.HitPoints()),
	)
}
