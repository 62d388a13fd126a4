package colorsort

import (
	"time"

	"github.com/apexrobotics/pushback/control"
	"github.com/apexrobotics/pushback/hardware"
)

// HookPosConfirm marks a color passing the debounce filter.
var HookPosConfirm = &control.HookPos{Name: "ColorConfirm"}

// HookPosEjectStart marks an ejection preempting the scoring controller.
var HookPosEjectStart = &control.HookPos{Name: "EjectStart"}

// HookPosEjectEnd marks an ejection completing and the scoring controller
// being restored.
var HookPosEjectEnd = &control.HookPos{Name: "EjectEnd"}

// ConfirmInfo is the hook payload at HookPosConfirm.
type ConfirmInfo struct {
	Channel hardware.OpticalChannel
	Color   BallColor
}

// EjectInfo is the hook payload at HookPosEjectStart and HookPosEjectEnd.
type EjectInfo struct {
	Color    BallColor
	Manual   bool
	Duration time.Duration

	// Restored is set on HookPosEjectEnd when the snapshot resumed a
	// prior operation.
	Restored bool
}
