package datarecording

import (
	"time"

	"github.com/apexrobotics/pushback/colorsort"
	"github.com/apexrobotics/pushback/control"
	"github.com/apexrobotics/pushback/indexer"
)

// CommandEntry is one scoring controller event.
type CommandEntry struct {
	TimeMs    int64
	Event     string
	Mode      string
	Direction string

	FromStorage bool
	Push        bool
}

// DetectionEntry is one confirmed color detection.
type DetectionEntry struct {
	TimeMs  int64
	Channel int
	Color   string
}

// EjectionEntry is one ejection start or end.
type EjectionEntry struct {
	TimeMs     int64
	Event      string
	Color      string
	Manual     bool
	DurationMs int64
	Restored   bool
}

// A MatchRecorder is a hook that turns controller events into telemetry
// rows. Register it on both controllers; all events of one run land in the
// same database.
type MatchRecorder struct {
	recorder DataRecorder
	clock    control.TimeTeller
}

// NewMatchRecorder creates the three telemetry tables and returns a hook
// ready to register.
func NewMatchRecorder(
	recorder DataRecorder,
	clock control.TimeTeller,
) *MatchRecorder {
	r := &MatchRecorder{
		recorder: recorder,
		clock:    clock,
	}

	recorder.CreateTable("commands", CommandEntry{})
	recorder.CreateTable("detections", DetectionEntry{})
	recorder.CreateTable("ejections", EjectionEntry{})

	return r
}

// Func records the hook event into the matching table.
func (r *MatchRecorder) Func(ctx control.HookCtx) {
	switch ctx.Pos {
	case indexer.HookPosDispatch:
		info := ctx.Item.(indexer.DispatchInfo)
		r.recorder.InsertData("commands", CommandEntry{
			TimeMs:      r.eventTime(ctx),
			Event:       "dispatch",
			Mode:        info.Mode.String(),
			Direction:   info.Direction.String(),
			FromStorage: info.FromStorage,
			Push:        info.Push,
		})

	case indexer.HookPosStop:
		info := ctx.Item.(indexer.StopInfo)
		r.recorder.InsertData("commands", CommandEntry{
			TimeMs:    r.eventTime(ctx),
			Event:     "stop",
			Direction: info.Direction.String(),
		})

	case indexer.HookPosTimeout:
		info := ctx.Item.(indexer.TimeoutInfo)
		r.recorder.InsertData("commands", CommandEntry{
			TimeMs:    r.eventTime(ctx),
			Event:     "timeout",
			Mode:      info.Mode.String(),
			Direction: info.Direction.String(),
		})

	case colorsort.HookPosConfirm:
		info := ctx.Item.(colorsort.ConfirmInfo)
		r.recorder.InsertData("detections", DetectionEntry{
			TimeMs:  r.eventTime(ctx),
			Channel: int(info.Channel),
			Color:   info.Color.String(),
		})

	case colorsort.HookPosEjectStart:
		r.insertEjection(ctx, "start")

	case colorsort.HookPosEjectEnd:
		r.insertEjection(ctx, "end")
	}
}

// Handle flushes the telemetry when the loop finishes.
func (r *MatchRecorder) Handle(now time.Duration) {
	r.recorder.Flush()
}

func (r *MatchRecorder) insertEjection(ctx control.HookCtx, event string) {
	info := ctx.Item.(colorsort.EjectInfo)
	r.recorder.InsertData("ejections", EjectionEntry{
		TimeMs:     r.eventTime(ctx),
		Event:      event,
		Color:      info.Color.String(),
		Manual:     info.Manual,
		DurationMs: info.Duration.Milliseconds(),
		Restored:   info.Restored,
	})
}

// eventTime prefers the time attached to the hook context and falls back to
// the loop clock.
func (r *MatchRecorder) eventTime(ctx control.HookCtx) int64 {
	if t, ok := ctx.Detail.(time.Duration); ok {
		return t.Milliseconds()
	}

	if r.clock != nil {
		return r.clock.CurrentTime().Milliseconds()
	}

	return 0
}
