package config

// Velocity targets for the transport motors, in RPM. The motors run under
// velocity control, which holds full torque at any target. Positive and
// negative signs encode the physical running direction of each roller; the
// values are tuned on the robot and must not be derived or rounded.

// Intake motor speeds.
const (
	InputMotorSpeed        = 550
	InputMotorReverseSpeed = -300
)

// Left (front) roller speeds.
const (
	LeftRollerFrontCollectionSpeed = -550
	LeftRollerFrontMidGoalSpeed    = 300
	LeftRollerFrontTopGoalSpeed    = -350
)

// Left roller speeds when helping back scoring.
const (
	LeftRollerBackCollectionSpeed = 150
	LeftRollerBackMidGoalSpeed    = -550
	LeftRollerBackTopGoalSpeed    = -350
)

// Right (back) roller speeds.
const (
	RightRollerCollectionSpeed    = -350
	RightRollerMidGoalSpeed       = 500
	RightRollerTopGoalSpeed       = -550
	RightRollerTopGoalHelperSpeed = -350
)

// Top roller speeds.
const (
	TopRollerFrontSpeed = 400
	TopRollerBackSpeed  = -400
)

// Speeds for moving balls out of the top storage toward a goal.
const (
	TopRollerStorageToFrontSpeed = 200
	TopRollerStorageToBackSpeed  = -200
	LeftRollerStorageToBackSpeed = 550
)

// TopRollerStorageFillSpeed moves balls up into storage without jamming.
const TopRollerStorageFillSpeed = 60
