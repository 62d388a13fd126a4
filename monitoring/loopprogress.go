package monitoring

import "github.com/apexrobotics/pushback/control"

// LoopProgressHook advances a progress bar by one step per loop iteration.
// It counts the after-tick event of a single designated ticker so that an
// iteration is counted once regardless of how many tickers are registered.
type LoopProgressHook struct {
	bar        *ProgressBar
	tickerName string
}

// NewLoopProgressHook creates a hook that advances bar whenever the ticker
// with the given name completes an iteration.
func NewLoopProgressHook(bar *ProgressBar, tickerName string) *LoopProgressHook {
	return &LoopProgressHook{
		bar:        bar,
		tickerName: tickerName,
	}
}

// Func advances the bar.
func (h *LoopProgressHook) Func(ctx control.HookCtx) {
	if ctx.Pos != control.HookPosAfterTick {
		return
	}

	t, ok := ctx.Item.(control.Ticker)
	if !ok || t.Name() != h.tickerName {
		return
	}

	h.bar.IncrementFinished(1)
}
