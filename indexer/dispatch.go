package indexer

import (
	"math"

	"github.com/apexrobotics/pushback/config"
)

// Hold marks a motor the dispatch leaves untouched. Because every sequence
// starts from an all-stopped state, an untouched motor stays at zero.
const Hold = math.MinInt32

type flapAction int

const (
	flapHold flapAction = iota
	flapOpen
	flapClose
)

type dispatchKey struct {
	mode        ScoringMode
	direction   ExecutionDirection
	fromStorage bool
}

// rollerTargets is one row of the dispatch table: the velocity target of
// each transport motor plus the flap action for a (mode, direction,
// storage-source) combination.
type rollerTargets struct {
	intake int
	left   int
	right  int
	top    int

	flap flapAction

	// drawsFromStorage rows decrement the storage count on dispatch.
	drawsFromStorage bool
}

// dispatchTable maps every runnable combination to its actuator targets.
// The values are tuned robot constants from the speed configuration; the
// table is data, not logic.
var dispatchTable = map[dispatchKey]rollerTargets{
	// Front sequences.
	{ModeCollection, DirectionFront, false}: {
		intake: config.InputMotorSpeed,
		left:   config.LeftRollerFrontCollectionSpeed,
		right:  config.RightRollerCollectionSpeed,
		top:    config.TopRollerFrontSpeed,
		flap:   flapClose,
	},
	{ModeCollection, DirectionFront, true}: {
		intake:           config.InputMotorSpeed,
		left:             config.LeftRollerFrontCollectionSpeed,
		right:            config.RightRollerCollectionSpeed,
		top:              config.TopRollerStorageToFrontSpeed,
		flap:             flapClose,
		drawsFromStorage: true,
	},
	{ModeMidGoal, DirectionFront, false}: {
		intake: config.InputMotorSpeed,
		left:   config.LeftRollerFrontMidGoalSpeed,
		right:  Hold,
		top:    Hold,
	},
	{ModeMidGoal, DirectionFront, true}: {
		intake:           config.InputMotorSpeed,
		left:             config.LeftRollerFrontMidGoalSpeed,
		right:            Hold,
		top:              config.TopRollerBackSpeed,
		drawsFromStorage: true,
	},
	{ModeLowGoal, DirectionFront, false}: {
		intake: config.InputMotorReverseSpeed,
		left:   Hold,
		right:  Hold,
		top:    Hold,
	},
	{ModeLowGoal, DirectionFront, true}: {
		intake:           config.InputMotorReverseSpeed,
		left:             config.LeftRollerFrontMidGoalSpeed,
		right:            Hold,
		top:              config.TopRollerBackSpeed,
		drawsFromStorage: true,
	},
	// Front top goal ignores the storage source: the ball is already at
	// the front top position.
	{ModeTopGoal, DirectionFront, false}: {
		intake: config.InputMotorSpeed,
		left:   config.LeftRollerFrontTopGoalSpeed,
		right:  config.RightRollerTopGoalHelperSpeed,
		top:    config.TopRollerFrontSpeed,
		flap:   flapOpen,
	},

	// Back sequences.
	{ModeCollection, DirectionBack, false}: {
		intake: config.InputMotorSpeed,
		left:   config.LeftRollerBackCollectionSpeed,
		right:  config.RightRollerCollectionSpeed,
		top:    Hold,
	},
	{ModeCollection, DirectionBack, true}: {
		intake:           config.InputMotorSpeed,
		left:             -config.LeftRollerBackCollectionSpeed,
		right:            config.RightRollerCollectionSpeed,
		top:              config.TopRollerStorageToBackSpeed,
		drawsFromStorage: true,
	},
	{ModeMidGoal, DirectionBack, false}: {
		intake: config.InputMotorSpeed,
		left:   config.LeftRollerBackMidGoalSpeed,
		right:  config.RightRollerMidGoalSpeed,
		top:    Hold,
	},
	{ModeMidGoal, DirectionBack, true}: {
		intake:           config.InputMotorSpeed,
		left:             config.LeftRollerBackMidGoalSpeed,
		right:            config.RightRollerMidGoalSpeed,
		top:              config.TopRollerStorageToBackSpeed,
		drawsFromStorage: true,
	},
	{ModeLowGoal, DirectionBack, false}: {
		intake: config.InputMotorReverseSpeed,
		left:   Hold,
		right:  Hold,
		top:    Hold,
	},
	{ModeLowGoal, DirectionBack, true}: {
		intake:           config.InputMotorReverseSpeed,
		left:             -config.LeftRollerBackCollectionSpeed,
		right:            Hold,
		top:              config.TopRollerStorageToBackSpeed,
		drawsFromStorage: true,
	},
	{ModeTopGoal, DirectionBack, false}: {
		intake: config.InputMotorSpeed,
		left:   config.LeftRollerBackTopGoalSpeed,
		right:  config.RightRollerTopGoalHelperSpeed,
		top:    config.TopRollerBackSpeed,
	},
	{ModeTopGoal, DirectionBack, true}: {
		intake:           config.InputMotorSpeed,
		left:             config.LeftRollerBackTopGoalSpeed,
		right:            config.RightRollerTopGoalSpeed,
		top:              config.TopRollerStorageToBackSpeed,
		drawsFromStorage: true,
	},
}

// lookupTargets resolves a table row, collapsing the front-top-goal storage
// variant onto the non-storage row.
func lookupTargets(key dispatchKey) rollerTargets {
	if key.mode == ModeTopGoal && key.direction == DirectionFront {
		key.fromStorage = false
	}

	return dispatchTable[key]
}
