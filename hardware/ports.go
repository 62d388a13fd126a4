// Package hardware defines the interfaces between the controllers and the
// physical robot: actuator commands, optical sensor readings, operator
// inputs, and operator feedback. The package also provides a bench rig that
// implements all the ports in memory so that a full match can run without a
// robot attached.
package hardware

// MotorID identifies one of the logical transport motors.
type MotorID int

// The four logical transport motors.
const (
	MotorIntake MotorID = iota
	MotorLeftRoller
	MotorRightRoller
	MotorTopRoller
	numMotors
)

func (m MotorID) String() string {
	switch m {
	case MotorIntake:
		return "intake"
	case MotorLeftRoller:
		return "left_roller"
	case MotorRightRoller:
		return "right_roller"
	case MotorTopRoller:
		return "top_roller"
	}
	return "unknown_motor"
}

// ValveID identifies a pneumatic valve.
type ValveID int

// ValveFrontFlap is the flap that holds balls for front scoring.
const ValveFrontFlap ValveID = iota

// CouplingState tells whether the shared middle wheels are serving the
// drivetrain or the scoring rollers.
type CouplingState int

// The two coupling positions.
const (
	CouplingDrivetrain CouplingState = iota
	CouplingScorer
)

func (s CouplingState) String() string {
	if s == CouplingScorer {
		return "scorer"
	}
	return "drivetrain"
}

// ActuatorPort issues velocity, valve, and coupling commands. The settle
// delay after a coupling switch is owned by the caller: the port only
// forwards the command.
type ActuatorPort interface {
	SetVelocity(id MotorID, rpm int)
	SetValve(id ValveID, open bool)
	Coupling() CouplingState
	SetCoupling(state CouplingState)
}

// OpticalChannel identifies one of the two checkpoints along the ball path.
type OpticalChannel int

// Checkpoint1 is the entry sensor, Checkpoint2 the downstream one.
const (
	Checkpoint1 OpticalChannel = 1
	Checkpoint2 OpticalChannel = 2
)

// SensorPort reads one optical channel. Hue is in degrees [0, 360];
// saturation and brightness are percentages [0, 100]. A lower proximity
// value means the ball is closer.
type SensorPort interface {
	Connected(ch OpticalChannel) bool
	Proximity(ch OpticalChannel) float64
	Hue(ch OpticalChannel) float64
	Saturation(ch OpticalChannel) float64
	Brightness(ch OpticalChannel) float64
	SetLEDBrightness(ch OpticalChannel, percent int)
}

// ButtonInputs is the raw level of the eight logical operator inputs,
// sampled once per loop iteration.
type ButtonInputs struct {
	Collection bool
	MidGoal    bool
	LowGoal    bool
	TopGoal    bool

	FrontExecute bool
	BackExecute  bool

	StorageToggle bool
	FlapToggle    bool
}

// InputPort supplies the operator input levels.
type InputPort interface {
	Read() ButtonInputs
}

// OperatorFeedback receives best-effort status output. Implementations must
// not block the control loop.
type OperatorFeedback interface {
	Connected() bool
	Print(line int, text string)
	Rumble(pattern string)
}
