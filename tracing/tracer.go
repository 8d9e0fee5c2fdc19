// Package tracing observes workdays through hooks and turns what happens into
// records and log lines.
package tracing

import (
	"github.com/sarchlab/thirst/sim"
	"github.com/sarchlab/thirst/workday"
)

// A Tracer is notified about the progress of a workday.
type Tracer interface {
	StartDay(user string, schedule workday.Schedule)
	EndHour(report workday.HourReport)
	EndDay(summary workday.Summary)
}

// NamedHookable is a hookable object that has a name.
type NamedHookable interface {
	sim.Named
	sim.Hookable
}

// CollectTrace lets the tracer collect the trace from a domain.
func CollectTrace(domain NamedHookable, tracer Tracer) {
	domain.AcceptHook(&traceHook{t: tracer})
}

// A traceHook turns workday hooks into tracer calls.
type traceHook struct {
	t Tracer
}

// Func calls the tracer interfaces when the hook is triggered.
func (h *traceHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case workday.HookPosDayStart:
		user := ""
		if day, ok := ctx.Domain.(*workday.Day); ok {
			user = day.User().Name()
		}

		h.t.StartDay(user, ctx.Item.(workday.Schedule))
	case workday.HookPosHourEnd:
		h.t.EndHour(ctx.Item.(workday.HourReport))
	case workday.HookPosDayEnd:
		h.t.EndDay(ctx.Item.(workday.Summary))
	}
}
