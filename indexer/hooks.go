package indexer

import "github.com/apexrobotics/pushback/control"

// HookPosDispatch marks the moment actuator targets for a sequence are
// written out.
var HookPosDispatch = &control.HookPos{Name: "Dispatch"}

// HookPosStop marks the completion of a full stop.
var HookPosStop = &control.HookPos{Name: "Stop"}

// HookPosTimeout marks a sequence stopped by the timeout table.
var HookPosTimeout = &control.HookPos{Name: "Timeout"}

// DispatchInfo is the hook payload at HookPosDispatch.
type DispatchInfo struct {
	Mode        ScoringMode
	Direction   ExecutionDirection
	FromStorage bool
	Push        bool
}

// StopInfo is the hook payload at HookPosStop.
type StopInfo struct {
	WasActive bool
	Direction ExecutionDirection
}

// TimeoutInfo is the hook payload at HookPosTimeout.
type TimeoutInfo struct {
	Mode      ScoringMode
	Direction ExecutionDirection
}
