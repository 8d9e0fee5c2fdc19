package sim

import (
	"reflect"

	"github.com/rs/zerolog"
)

// EventLogger is an hook that prints the event information
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger returns a new EventLogger which will write in to the logger
// at debug level.
func NewEventLogger(logger zerolog.Logger) *EventLogger {
	h := new(EventLogger)
	h.logger = logger

	return h
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	entry := h.logger.Debug().
		Float64("time", float64(evt.Time())).
		Str("event", reflect.TypeOf(evt).String()).
		Bool("secondary", evt.IsSecondary())

	if comp, ok := evt.Handler().(Named); ok {
		entry = entry.Str("handler", comp.Name())
	}

	entry.Msg("event")
}
