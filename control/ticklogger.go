package control

import (
	"log"
	"time"
)

// A LogHook is a hook that is responsible for recording information from the
// control loop.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks
type LogHookBase struct {
	*log.Logger
}

// TickLogger is a hook that prints one line per ticker invocation. It is
// mainly useful when replaying a bench run to see the interleaving of the
// two controllers.
type TickLogger struct {
	LogHookBase
}

// NewTickLogger returns a TickLogger which will write into the logger.
func NewTickLogger(logger *log.Logger) *TickLogger {
	h := new(TickLogger)
	h.Logger = logger
	return h
}

// Func writes the ticker information into the logger
func (h *TickLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeTick {
		return
	}

	t := ctx.Item.(Ticker)
	now := ctx.Detail.(time.Duration)
	h.Printf("%8dms tick -> %s", now.Milliseconds(), t.Name())
}
