package indexer

import (
	"fmt"
)

// handleInputs samples the operator buttons and applies rising-edge
// semantics. Mode selectors both remember the mode and start the storage
// fill; pressing the selector of the running storage mode again stops it.
// Execute buttons run the remembered mode, and a second press of the
// running direction drops back to the storage fill instead of restarting.
func (c *Controller) handleInputs() {
	cur := c.inputs.Read()
	prev := c.prevButtons
	c.prevButtons = cur

	c.handleModeButton(cur.Collection, prev.Collection, ModeCollection)
	c.handleModeButton(cur.MidGoal, prev.MidGoal, ModeMidGoal)
	c.handleModeButton(cur.LowGoal, prev.LowGoal, ModeLowGoal)
	c.handleModeButton(cur.TopGoal, prev.TopGoal, ModeTopGoal)

	if cur.FrontExecute && !prev.FrontExecute {
		if cur.StorageToggle {
			c.adjustStorageCount(-1)
		} else {
			c.handleExecuteButton(DirectionFront)
		}
		c.display.forceUpdate = true
	}

	if cur.BackExecute && !prev.BackExecute {
		if cur.StorageToggle {
			c.adjustStorageCount(+1)
		} else {
			c.handleExecuteButton(DirectionBack)
		}
		c.display.forceUpdate = true
	}

	if cur.StorageToggle && !prev.StorageToggle {
		c.ToggleStorageSource()
		c.display.forceUpdate = true
	}

	if cur.FlapToggle && !prev.FlapToggle {
		c.ToggleFlap()
		c.rumble("...")
		c.display.forceUpdate = true
	}
}

func (c *Controller) handleModeButton(cur, prev bool, mode ScoringMode) {
	if !cur || prev {
		return
	}

	if c.active && c.mode == mode && c.direction == DirectionStorage {
		c.StopAll()
		c.rumble("--")
		c.print(1, "STOPPED")
	} else {
		c.SetMode(mode)
		if c.StartIntakeStorage() == nil {
			c.rumble(".")
		}
	}

	c.display.forceUpdate = true
}

func (c *Controller) handleExecuteButton(dir ExecutionDirection) {
	switch {
	case c.mode == ModeNone:
		c.print(1, "Press Y/A/B/X first")
		c.rumble("---")

	case c.mode == ModeCollection:
		_ = c.Push(dir)
		c.rumble("..")

	case c.active && c.direction == dir:
		// Second press of the running direction returns to storage.
		c.StopAll()
		if c.StartIntakeStorage() == nil {
			c.rumble(".-")
		}

	default:
		_ = c.Execute(dir)
		c.rumble("..")
	}
}

// adjustStorageCount is the manual count correction chord. It only touches
// the tracked count, never the motors.
func (c *Controller) adjustStorageCount(delta int) {
	if delta > 0 {
		if err := c.AddBallToStorage(); err != nil {
			c.rumble("---")
			c.print(1, "Storage Full!")
			return
		}
		c.rumble(".")
		c.print(1, fmt.Sprintf("Ball Added: %d/%d",
			c.storageCount, c.cfg.StorageCapacity))
		return
	}

	if err := c.RemoveBallFromStorage(); err != nil {
		c.rumble("---")
		c.print(1, "Storage Empty!")
		return
	}
	c.rumble("..")
	c.print(1, fmt.Sprintf("Ball Removed: %d/%d",
		c.storageCount, c.cfg.StorageCapacity))
}
