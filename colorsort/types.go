// Package colorsort classifies balls at the optical checkpoints and ejects
// the ones the selected sorting mode does not want, by briefly preempting
// the scoring controller and restoring it afterwards.
package colorsort

import (
	"github.com/apexrobotics/pushback/indexer"
)

// BallColor is the result of classifying one sensor sample or a confirmed
// detection.
type BallColor int

// The classification outcomes.
const (
	ColorUnknown BallColor = iota
	ColorNoBall
	ColorRed
	ColorBlue
)

func (c BallColor) String() string {
	switch c {
	case ColorNoBall:
		return "NO BALL"
	case ColorRed:
		return "RED"
	case ColorBlue:
		return "BLUE"
	}
	return "UNKNOWN"
}

// SortingMode selects which confirmed colors get ejected.
type SortingMode int

// The sorting modes.
const (
	// CollectRed keeps red balls and ejects blue ones.
	CollectRed SortingMode = iota

	// CollectBlue keeps blue balls and ejects red ones.
	CollectBlue

	// CollectAll never ejects.
	CollectAll

	// EjectAll ejects every confirmed ball.
	EjectAll
)

func (m SortingMode) String() string {
	switch m {
	case CollectRed:
		return "COLLECT RED"
	case CollectBlue:
		return "COLLECT BLUE"
	case CollectAll:
		return "COLLECT ALL"
	case EjectAll:
		return "EJECT ALL"
	}
	return "UNKNOWN"
}

// BallDirection is the inferred travel direction of a ball between the two
// checkpoints. It is telemetry only; no ejection decision consumes it.
type BallDirection int

// The inferred directions.
const (
	DirectionUnknown BallDirection = iota
	DirectionForward
	DirectionReverse
	DirectionStationary
)

func (d BallDirection) String() string {
	switch d {
	case DirectionForward:
		return "FORWARD"
	case DirectionReverse:
		return "REVERSE"
	case DirectionStationary:
		return "STATIONARY"
	}
	return "UNKNOWN"
}

// Stats counts detections and ejections over one run.
type Stats struct {
	RedDetected  int
	BlueDetected int
	Ejected      int
	FalsePasses  int
}

// Snapshot captures the scoring controller state immediately before an
// ejection preempts it. It is one-shot: consumed on restore and then
// invalid regardless of outcome.
type Snapshot struct {
	Valid          bool
	WasActive      bool
	WasInputActive bool
	Mode           indexer.ScoringMode
	Direction      indexer.ExecutionDirection
}

// Scorer is the slice of the scoring controller the sorter needs: state to
// snapshot, stop for preemption, and the calls to drive an ejection and a
// restore. *indexer.Controller satisfies it.
type Scorer interface {
	ScoringActive() bool
	InputActive() bool
	Mode() indexer.ScoringMode
	Direction() indexer.ExecutionDirection

	SetMode(mode indexer.ScoringMode)
	Execute(dir indexer.ExecutionDirection) error
	StartIntakeStorage() error
	StopAll()
}
