package indexer

import "errors"

// ScoringMode selects what the transport path is trying to do with the
// balls it carries. The mode alone has no actuator effect; it arms the next
// execute command.
type ScoringMode int

// The scoring modes.
const (
	ModeNone ScoringMode = iota
	ModeCollection
	ModeMidGoal
	ModeLowGoal
	ModeTopGoal
)

func (m ScoringMode) String() string {
	switch m {
	case ModeCollection:
		return "COLLECTION"
	case ModeMidGoal:
		return "MID GOAL"
	case ModeLowGoal:
		return "LOW GOAL"
	case ModeTopGoal:
		return "TOP GOAL"
	case ModeNone:
		return "NONE"
	}
	return "UNKNOWN"
}

// Valid reports whether the mode is one of the defined values.
func (m ScoringMode) Valid() bool {
	return m >= ModeNone && m <= ModeTopGoal
}

// ExecutionDirection records which way a running sequence moves balls.
// DirectionNone means no sequence is running.
type ExecutionDirection int

// The execution directions.
const (
	DirectionNone ExecutionDirection = iota
	DirectionFront
	DirectionBack
	DirectionStorage
)

func (d ExecutionDirection) String() string {
	switch d {
	case DirectionFront:
		return "FRONT"
	case DirectionBack:
		return "BACK"
	case DirectionStorage:
		return "STORAGE"
	case DirectionNone:
		return "NONE"
	}
	return "UNKNOWN"
}

// Operation rejections. All are local and non-fatal: the caller gets
// feedback and no actuator state changes.
var (
	// ErrNoModeSelected reports an execute without a selected mode.
	ErrNoModeSelected = errors.New("no scoring mode selected")

	// ErrStorageFull reports an add or fill against a full storage.
	ErrStorageFull = errors.New("storage full")

	// ErrStorageEmpty reports a remove against an empty storage.
	ErrStorageEmpty = errors.New("storage empty")

	// ErrCouplingNotReady reports a coupling that failed to reach the
	// scorer position.
	ErrCouplingNotReady = errors.New("coupling not in scorer position")
)
