package colorsort

import (
	"log"
	"time"

	"github.com/apexrobotics/pushback/config"
	"github.com/apexrobotics/pushback/control"
	"github.com/apexrobotics/pushback/hardware"
	"github.com/apexrobotics/pushback/indexer"
)

// Controller is the color sorting controller. It samples both optical
// checkpoints every tick, debounces the classification, and runs the
// ejection sequencer. It writes to the actuators only indirectly, through
// the scoring controller it preempts.
//
// Like the scoring controller, all methods must be called from the control
// loop goroutine.
type Controller struct {
	control.HookableBase

	name    string
	cfg     config.SortConfig
	sensors hardware.SensorHandle
	scorer  Scorer

	enabled bool
	mode    SortingMode

	ch1 *sensorChannel
	ch2 *sensorChannel

	lastColor     BallColor
	lastDirection BallDirection

	ejecting       bool
	ejectionStart  time.Duration
	ejectionLength time.Duration
	manualArm      bool
	ejectingColor  BallColor
	ejectManual    bool

	snapshot Snapshot

	stats Stats
}

// NewController creates a sorting controller bound to the given sensors and
// scoring controller. A non-ready sensor handle or nil scorer yields a
// controller whose Tick is a no-op.
func NewController(
	name string,
	cfg config.SortConfig,
	sensors hardware.SensorHandle,
	scorer Scorer,
) *Controller {
	return &Controller{
		name:           name,
		cfg:            cfg,
		sensors:        sensors,
		scorer:         scorer,
		enabled:        true,
		mode:           CollectAll,
		ch1:            newSensorChannel(cfg.ConfirmationCount),
		ch2:            newSensorChannel(cfg.ConfirmationCount),
		ejectionLength: cfg.EjectDuration,
	}
}

// Name returns the controller name.
func (s *Controller) Name() string {
	return s.name
}

// SortingMode returns the active sorting policy.
func (s *Controller) SortingMode() SortingMode {
	return s.mode
}

// SetSortingMode selects the sorting policy.
func (s *Controller) SetSortingMode(mode SortingMode) {
	s.mode = mode
}

// Enabled reports whether automatic ejection is armed.
func (s *Controller) Enabled() bool {
	return s.enabled
}

// SetEnabled switches automatic ejection on or off. Classification and
// statistics keep running while disabled.
func (s *Controller) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// LastColor returns the most recently confirmed color.
func (s *Controller) LastColor() BallColor {
	return s.lastColor
}

// LastDirection returns the inferred ball direction. Telemetry only.
func (s *Controller) LastDirection() BallDirection {
	return s.lastDirection
}

// BallDetected reports whether either checkpoint currently sees a ball.
func (s *Controller) BallDetected() bool {
	return s.ch1.triggered || s.ch2.triggered
}

// Ejecting reports whether an ejection is running.
func (s *Controller) Ejecting() bool {
	return s.ejecting
}

// Statistics returns the detection and ejection counters.
func (s *Controller) Statistics() Stats {
	return s.stats
}

// ResetStatistics zeroes the counters.
func (s *Controller) ResetStatistics() {
	s.stats = Stats{}
}

// EjectionDuration returns the active ejection length.
func (s *Controller) EjectionDuration() time.Duration {
	return s.ejectionLength
}

// SetEjectionDuration adjusts the ejection length, clamped to the
// configured bounds, and returns the applied value.
func (s *Controller) SetEjectionDuration(d time.Duration) time.Duration {
	if d < s.cfg.EjectMinDuration {
		d = s.cfg.EjectMinDuration
	} else if d > s.cfg.EjectMaxDuration {
		d = s.cfg.EjectMaxDuration
	}

	s.ejectionLength = d
	return d
}

// TriggerEjection arms an ejection without waiting for a confirmed color.
// The arming guard still applies: a busy scoring controller defers the
// ejection to a later tick.
func (s *Controller) TriggerEjection() {
	s.manualArm = true
}

// Tick runs one sorting iteration. With missing hardware or no scoring
// controller it degrades to a pass-through.
func (s *Controller) Tick(now time.Duration) {
	if !s.sensors.Ready() || s.scorer == nil {
		return
	}

	port := s.sensors.Port()

	s.updateChannel(s.ch1, port, hardware.Checkpoint1, now)
	s.updateChannel(s.ch2, port, hardware.Checkpoint2, now)

	s.classifyChannels(port)
	s.lastDirection = s.inferDirection()

	if s.manualArm && !s.ejecting {
		if s.startEjection(now, true) {
			s.manualArm = false
		}
	}

	if s.enabled && !s.ejecting &&
		s.lastColor != ColorUnknown && s.lastColor != ColorNoBall &&
		shouldEject(s.mode, s.lastColor) {
		// Hold until the ball reaches the downstream checkpoint. The
		// condition is a level, re-evaluated every tick.
		if s.ch2.triggered ||
			(s.ch2.triggerTime > 0 &&
				now-s.ch2.triggerTime < s.cfg.EjectDelay) {
			s.startEjection(now, false)
		}
	}

	if s.ejecting && now-s.ejectionStart >= s.ejectionLength {
		s.stopEjection()
	}

	s.applyPassageTimeouts(now)
}

func (s *Controller) updateChannel(
	ch *sensorChannel,
	port hardware.SensorPort,
	id hardware.OpticalChannel,
	now time.Duration,
) {
	present := ballPresent(s.cfg, port.Proximity(id))

	if present && !ch.triggered {
		ch.triggered = true
		ch.triggerTime = now
	} else if !present && ch.triggered {
		ch.triggered = false
	}
}

func (s *Controller) classifyChannels(port hardware.SensorPort) {
	if s.ch1.triggered {
		confirmed := s.ch1.addSample(s.sample(port, hardware.Checkpoint1))
		if confirmed != ColorUnknown && confirmed != ColorNoBall {
			s.lastColor = confirmed

			switch confirmed {
			case ColorRed:
				s.stats.RedDetected++
			case ColorBlue:
				s.stats.BlueDetected++
			}

			s.InvokeHook(control.HookCtx{
				Domain: s,
				Pos:    HookPosConfirm,
				Item: ConfirmInfo{
					Channel: hardware.Checkpoint1,
					Color:   confirmed,
				},
			})
		}
	}

	if s.ch2.triggered {
		confirmed := s.ch2.addSample(s.sample(port, hardware.Checkpoint2))
		if confirmed != ColorUnknown && confirmed != ColorNoBall {
			// A disagreement between the checkpoints counts as a false
			// detection; the first checkpoint's confirmation stands.
			if s.lastColor != ColorUnknown && confirmed != s.lastColor {
				s.stats.FalsePasses++
			}

			s.InvokeHook(control.HookCtx{
				Domain: s,
				Pos:    HookPosConfirm,
				Item: ConfirmInfo{
					Channel: hardware.Checkpoint2,
					Color:   confirmed,
				},
			})
		}
	}
}

func (s *Controller) sample(
	port hardware.SensorPort,
	id hardware.OpticalChannel,
) BallColor {
	return classifySample(s.cfg,
		port.Proximity(id),
		port.Hue(id),
		port.Saturation(id),
		port.Brightness(id))
}

func (s *Controller) inferDirection() BallDirection {
	if s.ch1.triggerTime > 0 && s.ch2.triggerTime > 0 {
		diff := s.ch2.triggerTime - s.ch1.triggerTime
		if diff < 0 {
			diff = -diff
		}

		if diff < s.cfg.DirectionWindow {
			if s.ch1.triggerTime < s.ch2.triggerTime {
				return DirectionForward
			}
			return DirectionReverse
		}
	}

	if s.ch1.triggered != s.ch2.triggered {
		return DirectionStationary
	}

	return DirectionUnknown
}

// startEjection runs the Arming to Active transition. It returns false
// when the single-writer guard refuses the preemption because the operator
// is mid-sequence; the caller retries on a later tick.
func (s *Controller) startEjection(now time.Duration, manual bool) bool {
	if s.ejecting {
		return false
	}

	if s.scorer.ScoringActive() {
		return false
	}

	s.snapshot = Snapshot{
		Valid:          true,
		WasActive:      s.scorer.ScoringActive(),
		WasInputActive: s.scorer.InputActive(),
		Mode:           s.scorer.Mode(),
		Direction:      s.scorer.Direction(),
	}

	s.scorer.StopAll()

	s.ejecting = true
	s.ejectionStart = now
	s.ejectingColor = s.lastColor
	s.ejectManual = manual
	s.stats.Ejected++

	// The back mid-goal path doubles as the discharge chute.
	s.scorer.SetMode(indexer.ModeMidGoal)
	_ = s.scorer.Execute(indexer.DirectionBack)

	s.InvokeHook(control.HookCtx{
		Domain: s,
		Pos:    HookPosEjectStart,
		Item: EjectInfo{
			Color:    s.ejectingColor,
			Manual:   manual,
			Duration: s.ejectionLength,
		},
		Detail: now,
	})

	return true
}

// stopEjection ends an active ejection, resets the detection state so the
// just-ejected ball cannot re-trigger, and consumes the snapshot. Calling
// it with no active ejection is a no-op.
func (s *Controller) stopEjection() {
	if !s.ejecting {
		return
	}

	s.ejecting = false

	s.scorer.StopAll()
	s.resetDetectionState()

	restored := s.restoreScorer()

	s.InvokeHook(control.HookCtx{
		Domain: s,
		Pos:    HookPosEjectEnd,
		Item: EjectInfo{
			Color:    s.ejectingColor,
			Manual:   s.ejectManual,
			Duration: s.ejectionLength,
			Restored: restored,
		},
	})
}

func (s *Controller) resetDetectionState() {
	s.ch1.reset()
	s.ch2.reset()
	s.lastColor = ColorUnknown
	s.lastDirection = DirectionUnknown
}

// restoreScorer consumes the snapshot exactly once and reissues the saved
// operation. The snapshot is invalidated regardless of outcome.
func (s *Controller) restoreScorer() bool {
	snap := s.snapshot
	s.snapshot = Snapshot{}

	if !snap.Valid || !snap.WasActive {
		return false
	}

	if !snap.Mode.Valid() || snap.Mode == indexer.ModeNone {
		log.Printf("%s: discarding snapshot with unusable mode %d",
			s.name, snap.Mode)
		return false
	}

	s.scorer.SetMode(snap.Mode)

	switch snap.Direction {
	case indexer.DirectionFront:
		_ = s.scorer.Execute(indexer.DirectionFront)
	case indexer.DirectionBack:
		_ = s.scorer.Execute(indexer.DirectionBack)
	case indexer.DirectionStorage:
		_ = s.scorer.StartIntakeStorage()
	default:
		if !snap.WasInputActive {
			return false
		}
		_ = s.scorer.StartIntakeStorage()
	}

	return true
}

// applyPassageTimeouts clears checkpoints that stay triggered past the
// passage timeout, so a stuck or removed ball cannot wedge the detector.
func (s *Controller) applyPassageTimeouts(now time.Duration) {
	if s.ch1.triggered &&
		now-s.ch1.triggerTime > s.cfg.PassageTimeout {
		s.ch1.triggered = false
		s.lastColor = ColorUnknown
	}

	if s.ch2.triggered &&
		now-s.ch2.triggerTime > s.cfg.PassageTimeout {
		s.ch2.triggered = false
	}
}
