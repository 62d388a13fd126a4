package hardware

import (
	"log"
	"time"
)

// An ActuatorCommand records one command issued to the bench actuators, in
// issue order.
type ActuatorCommand struct {
	Kind     string // "velocity", "valve", or "coupling"
	Motor    MotorID
	RPM      int
	Valve    ValveID
	Open     bool
	Coupling CouplingState
}

// BenchActuators is an in-memory ActuatorPort. It tracks the last commanded
// state of every motor, valve, and the coupling, and keeps a command log so
// tests can assert on ordering.
type BenchActuators struct {
	velocities [numMotors]int
	valves     map[ValveID]bool
	coupling   CouplingState

	failCouplingSwitch bool

	commands []ActuatorCommand
}

// NewBenchActuators creates a BenchActuators with the coupling in
// drivetrain position, matching robot startup.
func NewBenchActuators() *BenchActuators {
	return &BenchActuators{
		valves:   make(map[ValveID]bool),
		coupling: CouplingDrivetrain,
	}
}

// SetVelocity records a velocity command.
func (b *BenchActuators) SetVelocity(id MotorID, rpm int) {
	b.velocities[id] = rpm
	b.commands = append(b.commands,
		ActuatorCommand{Kind: "velocity", Motor: id, RPM: rpm})
}

// SetValve records a valve command.
func (b *BenchActuators) SetValve(id ValveID, open bool) {
	b.valves[id] = open
	b.commands = append(b.commands,
		ActuatorCommand{Kind: "valve", Valve: id, Open: open})
}

// Coupling returns the current coupling position.
func (b *BenchActuators) Coupling() CouplingState {
	return b.coupling
}

// SetCoupling records a coupling command. If the rig is configured to fail
// coupling switches, the position does not change and a later read-back
// still reports the old position.
func (b *BenchActuators) SetCoupling(state CouplingState) {
	b.commands = append(b.commands,
		ActuatorCommand{Kind: "coupling", Coupling: state})

	if b.failCouplingSwitch {
		return
	}

	b.coupling = state
}

// FailCouplingSwitch makes subsequent coupling commands stick, emulating a
// pneumatic fault.
func (b *BenchActuators) FailCouplingSwitch(fail bool) {
	b.failCouplingSwitch = fail
}

// Velocity returns the last commanded velocity of a motor.
func (b *BenchActuators) Velocity(id MotorID) int {
	return b.velocities[id]
}

// ValveOpen returns the last commanded state of a valve.
func (b *BenchActuators) ValveOpen(id ValveID) bool {
	return b.valves[id]
}

// AllStopped reports whether every motor's last command was zero.
func (b *BenchActuators) AllStopped() bool {
	for _, v := range b.velocities {
		if v != 0 {
			return false
		}
	}
	return true
}

// Commands returns the command log.
func (b *BenchActuators) Commands() []ActuatorCommand {
	return b.commands
}

// ResetCommands clears the command log without touching actuator state.
func (b *BenchActuators) ResetCommands() {
	b.commands = nil
}

// A Reading is what one optical channel reports for a single sample.
type Reading struct {
	Proximity  float64
	Hue        float64
	Saturation float64
	Brightness float64
}

// IdleReading is what a channel reports with no ball in front of it.
var IdleReading = Reading{Proximity: 255}

// BenchSensors is an in-memory SensorPort whose readings are set by tests
// or by a SensorScript.
type BenchSensors struct {
	readings     map[OpticalChannel]Reading
	led          map[OpticalChannel]int
	disconnected bool
}

// NewBenchSensors creates a BenchSensors with both channels idle.
func NewBenchSensors() *BenchSensors {
	return &BenchSensors{
		readings: map[OpticalChannel]Reading{
			Checkpoint1: IdleReading,
			Checkpoint2: IdleReading,
		},
		led: make(map[OpticalChannel]int),
	}
}

// Connected reports channel availability.
func (b *BenchSensors) Connected(OpticalChannel) bool {
	return !b.disconnected
}

// Disconnect makes both channels report as absent, for degraded-mode tests.
func (b *BenchSensors) Disconnect() {
	b.disconnected = true
}

// SetReading installs the reading a channel reports until changed.
func (b *BenchSensors) SetReading(ch OpticalChannel, r Reading) {
	b.readings[ch] = r
}

// ClearChannel returns a channel to the idle reading.
func (b *BenchSensors) ClearChannel(ch OpticalChannel) {
	b.readings[ch] = IdleReading
}

// Proximity returns the current proximity sample.
func (b *BenchSensors) Proximity(ch OpticalChannel) float64 {
	return b.readings[ch].Proximity
}

// Hue returns the current hue sample.
func (b *BenchSensors) Hue(ch OpticalChannel) float64 {
	return b.readings[ch].Hue
}

// Saturation returns the current saturation sample.
func (b *BenchSensors) Saturation(ch OpticalChannel) float64 {
	return b.readings[ch].Saturation
}

// Brightness returns the current brightness sample.
func (b *BenchSensors) Brightness(ch OpticalChannel) float64 {
	return b.readings[ch].Brightness
}

// SetLEDBrightness records the LED power level.
func (b *BenchSensors) SetLEDBrightness(ch OpticalChannel, percent int) {
	b.led[ch] = percent
}

// LEDBrightness returns the LED power level set during initialization.
func (b *BenchSensors) LEDBrightness(ch OpticalChannel) int {
	return b.led[ch]
}

// A BallPass scripts one ball traveling through both checkpoints.
type BallPass struct {
	// Start is when the ball reaches checkpoint 1.
	Start time.Duration
	// Dwell is how long the ball sits in front of each checkpoint.
	Dwell time.Duration
	// Transit is the time between leaving checkpoint 1 and reaching
	// checkpoint 2.
	Transit time.Duration
	// Reading is what the sensors see while the ball is present.
	Reading Reading
}

// SensorScript replays scripted ball passes into a BenchSensors. It is a
// loop ticker so that the readings advance in lockstep with the
// controllers.
type SensorScript struct {
	name    string
	sensors *BenchSensors
	passes  []BallPass
}

// NewSensorScript creates a SensorScript.
func NewSensorScript(
	name string,
	sensors *BenchSensors,
	passes []BallPass,
) *SensorScript {
	return &SensorScript{name: name, sensors: sensors, passes: passes}
}

// Name returns the name of the script.
func (s *SensorScript) Name() string {
	return s.name
}

// Tick updates both channels for the current time.
func (s *SensorScript) Tick(now time.Duration) {
	r1 := IdleReading
	r2 := IdleReading

	for _, p := range s.passes {
		if now >= p.Start && now < p.Start+p.Dwell {
			r1 = p.Reading
		}

		arrive2 := p.Start + p.Dwell + p.Transit
		if now >= arrive2 && now < arrive2+p.Dwell {
			r2 = p.Reading
		}
	}

	s.sensors.SetReading(Checkpoint1, r1)
	s.sensors.SetReading(Checkpoint2, r2)
}

// BenchInputs is an in-memory InputPort.
type BenchInputs struct {
	current ButtonInputs
}

// NewBenchInputs creates a BenchInputs with all buttons released.
func NewBenchInputs() *BenchInputs {
	return &BenchInputs{}
}

// Read returns the current button levels.
func (b *BenchInputs) Read() ButtonInputs {
	return b.current
}

// Set installs the button levels returned by subsequent reads.
func (b *BenchInputs) Set(in ButtonInputs) {
	b.current = in
}

// Release clears all buttons.
func (b *BenchInputs) Release() {
	b.current = ButtonInputs{}
}

// ConsoleFeedback writes operator feedback to a logger. It stands in for
// the controller screen during bench runs.
type ConsoleFeedback struct {
	*log.Logger
}

// NewConsoleFeedback creates a ConsoleFeedback.
func NewConsoleFeedback(logger *log.Logger) *ConsoleFeedback {
	return &ConsoleFeedback{Logger: logger}
}

// Connected always reports true.
func (f *ConsoleFeedback) Connected() bool {
	return true
}

// Print writes one display line.
func (f *ConsoleFeedback) Print(line int, text string) {
	f.Printf("display[%d]: %s", line, text)
}

// Rumble writes the haptic pattern.
func (f *ConsoleFeedback) Rumble(pattern string) {
	f.Printf("rumble: %s", pattern)
}
