// Package indexer implements the scoring controller: it owns the transport
// mode and direction state and maps operator commands to concrete velocity,
// valve, and coupling commands on the shared actuators.
package indexer

import (
	"fmt"
	"log"
	"time"

	"github.com/apexrobotics/pushback/config"
	"github.com/apexrobotics/pushback/control"
	"github.com/apexrobotics/pushback/hardware"
)

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingExecute
	pendingStorage
	pendingPush
)

// A pendingDispatch is an accepted command waiting for the coupling to
// settle. The loop stays responsive while the pneumatics move; the tick
// that observes the settle deadline completes the dispatch.
type pendingDispatch struct {
	kind  pendingKind
	key   dispatchKey
	until time.Duration
}

// Controller is the scoring/indexing controller. All methods must be called
// from the control loop goroutine; the controller is not safe for
// concurrent use.
type Controller struct {
	control.HookableBase

	name string
	cfg  config.IndexerConfig

	actuators hardware.ActuatorPort
	inputs    hardware.InputPort
	feedback  hardware.OperatorFeedback
	clock     control.TimeTeller

	mode      ScoringMode
	direction ExecutionDirection
	active    bool
	startTime time.Duration

	inputActive   bool
	storageSource bool
	flapOpen      bool
	storageCount  int

	pending *pendingDispatch

	prevButtons hardware.ButtonInputs

	display displayState
}

// NewController creates a scoring controller. The input port and feedback
// may be nil; a nil input port disables operator handling in Tick and a nil
// feedback silently drops status output.
func NewController(
	name string,
	cfg config.IndexerConfig,
	actuators hardware.ActuatorPort,
	inputs hardware.InputPort,
	feedback hardware.OperatorFeedback,
	clock control.TimeTeller,
) *Controller {
	c := &Controller{
		name:      name,
		cfg:       cfg,
		actuators: actuators,
		inputs:    inputs,
		feedback:  feedback,
		clock:     clock,
	}

	c.display.forceUpdate = true

	// Known-safe starting state.
	c.StopAll()

	return c
}

// Name returns the controller name.
func (c *Controller) Name() string {
	return c.name
}

// Mode returns the selected scoring mode.
func (c *Controller) Mode() ScoringMode {
	return c.mode
}

// Direction returns the direction of the running sequence, or
// DirectionNone when idle.
func (c *Controller) Direction() ExecutionDirection {
	return c.direction
}

// ScoringActive reports whether a sequence is running.
func (c *Controller) ScoringActive() bool {
	return c.active
}

// InputActive reports whether the intake motor is running.
func (c *Controller) InputActive() bool {
	return c.inputActive
}

// StorageSource reports whether sequences draw from the top storage.
func (c *Controller) StorageSource() bool {
	return c.storageSource
}

// StorageCount returns the tracked number of balls in the top storage.
func (c *Controller) StorageCount() int {
	return c.storageCount
}

// FlapOpen reports the tracked front flap position.
func (c *Controller) FlapOpen() bool {
	return c.flapOpen
}

// SetMode selects a scoring mode. It is a pure state change with no
// actuator effect and is idempotent.
func (c *Controller) SetMode(mode ScoringMode) {
	if !mode.Valid() {
		log.Panicf("invalid scoring mode %d", mode)
	}

	c.mode = mode
}

// Execute starts the sequence for the selected mode in the given direction.
// A running sequence is fully stopped first: cancellation is always a
// complete stop, never a drain. If the coupling has to move to the scorer
// position, the roller commands are issued after the settle delay; the
// sequence counts as active from acceptance.
func (c *Controller) Execute(dir ExecutionDirection) error {
	if dir != DirectionFront && dir != DirectionBack {
		log.Panicf("execute direction must be front or back, got %s", dir)
	}

	if c.mode == ModeNone {
		c.print(1, "Need Mode")
		return ErrNoModeSelected
	}

	if c.active {
		c.StopAll()
	}

	now := c.clock.CurrentTime()
	key := dispatchKey{mode: c.mode, direction: dir, fromStorage: c.storageSource}

	c.active = true
	c.direction = dir
	c.startTime = now
	c.feedbackExecute(dir)

	// Low goal only reverses the intake, which does not ride on the
	// coupling, so it skips the settle entirely.
	if c.mode != ModeLowGoal &&
		c.actuators.Coupling() == hardware.CouplingDrivetrain {
		c.actuators.SetCoupling(hardware.CouplingScorer)
		c.pending = &pendingDispatch{
			kind:  pendingExecute,
			key:   key,
			until: now + c.cfg.SettleDelay,
		}
		return nil
	}

	c.dispatch(key, now)

	return nil
}

// StartIntakeStorage begins the continuous fill sequence that moves balls
// from the intake into the top storage. It is rejected when the storage is
// full, and aborted with feedback when the coupling cannot be verified in
// the scorer position.
func (c *Controller) StartIntakeStorage() error {
	if c.IsStorageFull() {
		c.print(1, "STORAGE FULL!")
		c.rumble("--")
		return ErrStorageFull
	}

	if c.active {
		c.StopAll()
	}

	now := c.clock.CurrentTime()

	if c.actuators.Coupling() == hardware.CouplingDrivetrain {
		c.actuators.SetCoupling(hardware.CouplingScorer)
		c.active = true
		c.direction = DirectionStorage
		c.startTime = now
		c.pending = &pendingDispatch{
			kind:  pendingStorage,
			until: now + c.cfg.StorageSettleDelay,
		}
		return nil
	}

	c.dispatchStorage(now)

	return nil
}

// Push starts the collection push sub-mode: the coupling returns to the
// drivetrain position and only the intake motor runs, forward or reverse.
func (c *Controller) Push(dir ExecutionDirection) error {
	if dir != DirectionFront && dir != DirectionBack {
		log.Panicf("push direction must be front or back, got %s", dir)
	}

	if c.active {
		c.StopAll()
	}

	now := c.clock.CurrentTime()

	c.active = true
	c.direction = dir
	c.startTime = now

	if c.actuators.Coupling() == hardware.CouplingScorer {
		c.actuators.SetCoupling(hardware.CouplingDrivetrain)
		c.pending = &pendingDispatch{
			kind:  pendingPush,
			key:   dispatchKey{direction: dir},
			until: now + c.cfg.PushSettleDelay,
		}
		return nil
	}

	c.dispatchPush(dir, now)

	return nil
}

// StopAll stops every transport motor, closes the flap, and clears the
// running state. It always succeeds and is safe to call from any state,
// any caller, any time.
func (c *Controller) StopAll() {
	wasActive := c.active
	prevDirection := c.direction

	// The intake is stopped twice; a single velocity command has been
	// observed to be dropped during coupling transitions.
	c.actuators.SetVelocity(hardware.MotorIntake, 0)
	c.actuators.SetVelocity(hardware.MotorIntake, 0)
	c.actuators.SetVelocity(hardware.MotorLeftRoller, 0)
	c.actuators.SetVelocity(hardware.MotorRightRoller, 0)
	c.actuators.SetVelocity(hardware.MotorTopRoller, 0)

	c.setFlap(false)

	c.active = false
	c.inputActive = false
	c.direction = DirectionNone
	c.pending = nil

	c.InvokeHook(control.HookCtx{
		Domain: c,
		Pos:    HookPosStop,
		Item:   StopInfo{WasActive: wasActive, Direction: prevDirection},
	})
}

// AddBallToStorage increments the tracked storage count, failing without
// mutation at capacity.
func (c *Controller) AddBallToStorage() error {
	if c.IsStorageFull() {
		return ErrStorageFull
	}

	c.storageCount++
	c.print(2, fmt.Sprintf("Storage: %d/%d", c.storageCount, c.cfg.StorageCapacity))

	return nil
}

// RemoveBallFromStorage decrements the tracked storage count, failing
// without mutation at zero.
func (c *Controller) RemoveBallFromStorage() error {
	if c.storageCount <= 0 {
		return ErrStorageEmpty
	}

	c.storageCount--
	c.print(2, fmt.Sprintf("Storage: %d/%d", c.storageCount, c.cfg.StorageCapacity))

	return nil
}

// ResetStorageCount zeroes the tracked storage count.
func (c *Controller) ResetStorageCount() {
	c.storageCount = 0
	c.print(2, fmt.Sprintf("Storage: 0/%d", c.cfg.StorageCapacity))
}

// IsStorageFull reports whether the storage is at capacity.
func (c *Controller) IsStorageFull() bool {
	return c.storageCount >= c.cfg.StorageCapacity
}

// ToggleStorageSource flips whether sequences draw from the top storage.
func (c *Controller) ToggleStorageSource() {
	c.storageSource = !c.storageSource
}

// ToggleFlap flips the front flap.
func (c *Controller) ToggleFlap() {
	c.setFlap(!c.flapOpen)
}

// Tick runs one control iteration: operator input edges, deferred dispatch
// completion, the timeout table, and the throttled display.
func (c *Controller) Tick(now time.Duration) {
	if c.inputs != nil {
		c.handleInputs()
	}

	c.completePending(now)
	c.applyTimeouts(now)
	c.updateDisplay(now)
}

func (c *Controller) dispatch(key dispatchKey, now time.Duration) {
	t := lookupTargets(key)

	switch t.flap {
	case flapOpen:
		c.setFlap(true)
	case flapClose:
		c.setFlap(false)
	}

	if t.drawsFromStorage {
		// A ball is leaving storage for the goal. At zero the count
		// just stays clamped.
		_ = c.RemoveBallFromStorage()
	}

	c.setMotor(hardware.MotorLeftRoller, t.left)
	c.setMotor(hardware.MotorRightRoller, t.right)
	c.setMotor(hardware.MotorTopRoller, t.top)

	if t.intake != Hold {
		c.actuators.SetVelocity(hardware.MotorIntake, t.intake)
		c.inputActive = true
	}

	c.active = true
	c.direction = key.direction
	c.startTime = now

	c.InvokeHook(control.HookCtx{
		Domain: c,
		Pos:    HookPosDispatch,
		Item: DispatchInfo{
			Mode:        key.mode,
			Direction:   key.direction,
			FromStorage: key.fromStorage,
		},
		Detail: now,
	})
}

func (c *Controller) dispatchStorage(now time.Duration) {
	c.actuators.SetVelocity(hardware.MotorIntake, config.InputMotorSpeed)
	c.inputActive = true

	// Balls are held against the closed flap while they climb.
	c.setFlap(false)

	c.actuators.SetVelocity(
		hardware.MotorTopRoller, config.TopRollerStorageFillSpeed)
	c.actuators.SetVelocity(
		hardware.MotorLeftRoller, config.LeftRollerFrontCollectionSpeed/2)
	c.actuators.SetVelocity(
		hardware.MotorRightRoller, config.RightRollerTopGoalHelperSpeed)

	c.active = true
	c.direction = DirectionStorage
	c.startTime = now

	c.print(1, fmt.Sprintf("STORING: %s (%d/%d)",
		c.mode, c.storageCount, c.cfg.StorageCapacity))

	c.InvokeHook(control.HookCtx{
		Domain: c,
		Pos:    HookPosDispatch,
		Item: DispatchInfo{
			Mode:      c.mode,
			Direction: DirectionStorage,
		},
		Detail: now,
	})
}

func (c *Controller) dispatchPush(dir ExecutionDirection, now time.Duration) {
	speed := config.InputMotorSpeed
	label := "PUSH FORWARD"
	if dir == DirectionBack {
		speed = config.InputMotorReverseSpeed
		label = "PUSH BACKWARD"
	}

	c.actuators.SetVelocity(hardware.MotorIntake, speed)
	c.inputActive = true

	c.active = true
	c.direction = dir
	c.startTime = now

	c.print(1, label)

	c.InvokeHook(control.HookCtx{
		Domain: c,
		Pos:    HookPosDispatch,
		Item: DispatchInfo{
			Mode:      c.mode,
			Direction: dir,
			Push:      true,
		},
		Detail: now,
	})
}

func (c *Controller) completePending(now time.Duration) {
	if c.pending == nil || now < c.pending.until {
		return
	}

	p := c.pending
	c.pending = nil

	switch p.kind {
	case pendingExecute:
		c.dispatch(p.key, now)
	case pendingPush:
		c.dispatchPush(p.key.direction, now)
	case pendingStorage:
		// The storage fill verifies the switch by read-back; a stuck
		// coupling aborts the fill with no motor started.
		if c.actuators.Coupling() != hardware.CouplingScorer {
			c.active = false
			c.direction = DirectionNone
			c.print(1, "PTO ERROR")
			c.rumble("---")
			return
		}
		c.dispatchStorage(now)
	}
}

func (c *Controller) applyTimeouts(now time.Duration) {
	if !c.active {
		return
	}

	elapsed := now - c.startTime

	// Low goal stops early no matter which direction is running.
	if c.mode == ModeLowGoal && elapsed > c.cfg.LowGoalTimeout {
		c.stopOnTimeout(now, "LOW TIMEOUT", "...")
		return
	}

	var limit time.Duration
	switch {
	case c.direction == DirectionStorage:
		limit = c.cfg.StorageTimeout
	case c.mode == ModeCollection &&
		(c.direction == DirectionFront || c.direction == DirectionBack):
		limit = c.cfg.PushTimeout
	default:
		limit = c.cfg.DefaultTimeout
	}

	if elapsed > limit {
		c.stopOnTimeout(now, "TIMEOUT STOP", "---")
	}
}

func (c *Controller) stopOnTimeout(
	now time.Duration,
	label, pattern string,
) {
	mode := c.mode
	dir := c.direction

	c.StopAll()
	c.print(2, label)
	c.rumble(pattern)

	c.InvokeHook(control.HookCtx{
		Domain: c,
		Pos:    HookPosTimeout,
		Item:   TimeoutInfo{Mode: mode, Direction: dir},
		Detail: now,
	})
}

func (c *Controller) setMotor(id hardware.MotorID, rpm int) {
	if rpm == Hold {
		return
	}

	c.actuators.SetVelocity(id, rpm)
}

func (c *Controller) setFlap(open bool) {
	c.actuators.SetValve(hardware.ValveFrontFlap, open)
	c.flapOpen = open
}

func (c *Controller) feedbackExecute(dir ExecutionDirection) {
	if c.storageSource {
		c.print(1, fmt.Sprintf("STORAGE %s %s", dir, c.mode))
		return
	}

	c.print(1, fmt.Sprintf("%s %s", dir, c.mode))
}

func (c *Controller) print(line int, text string) {
	if c.feedback == nil || !c.feedback.Connected() {
		return
	}

	c.feedback.Print(line, text)
}

func (c *Controller) rumble(pattern string) {
	if c.feedback == nil || !c.feedback.Connected() {
		return
	}

	c.feedback.Rumble(pattern)
}
