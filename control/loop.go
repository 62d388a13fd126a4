package control

import (
	"context"
	"sync"
	"time"
)

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// TimeTeller can be used to get the current time since the start of the
// match.
type TimeTeller interface {
	CurrentTime() time.Duration
}

// A Ticker is a unit that updates its state once per loop period.
type Ticker interface {
	Named

	Tick(now time.Duration)
}

// A LoopEndHandler is a handler that is called after the loop stops.
type LoopEndHandler interface {
	Handle(now time.Duration)
}

// Loop invokes all the registered tickers cooperatively, one after another,
// at a fixed period. There is no preemption; a ticker that blocks stalls the
// whole loop.
type Loop struct {
	HookableBase

	freq Freq

	timeLock sync.RWMutex
	time     time.Duration

	tickers []Ticker

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex

	singleRunLock sync.Mutex

	loopEndHandlers []LoopEndHandler
}

// NewLoop creates a Loop that ticks at the given frequency.
func NewLoop(freq Freq) *Loop {
	l := new(Loop)
	l.freq = freq
	return l
}

// Register adds a ticker to the loop. Tickers run in registration order
// within one iteration.
func (l *Loop) Register(t Ticker) {
	l.tickers = append(l.tickers, t)
}

// Freq returns the loop frequency.
func (l *Loop) Freq() Freq {
	return l.freq
}

// CurrentTime returns the time of the most recent iteration.
func (l *Loop) CurrentTime() time.Duration {
	l.timeLock.RLock()
	t := l.time
	l.timeLock.RUnlock()
	return t
}

func (l *Loop) writeNow(t time.Duration) {
	l.timeLock.Lock()
	l.time = t
	l.timeLock.Unlock()
}

// Step runs exactly one loop iteration, advancing time by one period.
func (l *Loop) Step() {
	l.pauseLock.Lock()
	defer l.pauseLock.Unlock()

	now := l.CurrentTime() + l.freq.Period()
	l.writeNow(now)

	for _, t := range l.tickers {
		hookCtx := HookCtx{
			Domain: l,
			Pos:    HookPosBeforeTick,
			Item:   t,
			Detail: now,
		}
		l.InvokeHook(hookCtx)

		t.Tick(now)

		hookCtx.Pos = HookPosAfterTick
		l.InvokeHook(hookCtx)
	}
}

// RunFor advances virtual time until the given duration is reached. It is
// the bench-top equivalent of a match: no wall-clock waiting is involved.
func (l *Loop) RunFor(d time.Duration) error {
	l.singleRunLock.Lock()
	defer l.singleRunLock.Unlock()

	for l.CurrentTime()+l.freq.Period() <= d {
		l.Step()
	}

	return nil
}

// RunRealtime drives the loop from the wall clock until the context is
// canceled. Each wall-clock period triggers one iteration.
func (l *Loop) RunRealtime(ctx context.Context) error {
	l.singleRunLock.Lock()
	defer l.singleRunLock.Unlock()

	ticker := time.NewTicker(l.freq.Period())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Step()
		}
	}
}

// Pause prevents the loop from running more iterations.
func (l *Loop) Pause() {
	l.isPausedLock.Lock()
	defer l.isPausedLock.Unlock()

	if l.isPaused {
		return
	}

	l.isPaused = true
	l.pauseLock.Lock()
}

// Continue resumes a paused loop.
func (l *Loop) Continue() {
	l.isPausedLock.Lock()
	defer l.isPausedLock.Unlock()

	if !l.isPaused {
		return
	}

	l.isPaused = false
	l.pauseLock.Unlock()
}

// RegisterLoopEndHandler registers a handler to run when the loop finishes.
func (l *Loop) RegisterLoopEndHandler(h LoopEndHandler) {
	l.loopEndHandlers = append(l.loopEndHandlers, h)
}

// Finished invokes all the registered LoopEndHandlers.
func (l *Loop) Finished() {
	now := l.CurrentTime()
	for _, h := range l.loopEndHandlers {
		h.Handle(now)
	}
}
