package indexer

import (
	"fmt"
	"strings"
	"time"
)

type displayState struct {
	lastUpdate  time.Duration
	lines       [3]string
	forceUpdate bool
}

// updateDisplay refreshes the three operator status lines. Updates are
// throttled and only lines whose content changed are re-sent, to keep the
// feedback channel from saturating.
func (c *Controller) updateDisplay(now time.Duration) {
	if c.feedback == nil || !c.feedback.Connected() {
		return
	}

	if !c.display.forceUpdate &&
		now-c.display.lastUpdate < c.cfg.DisplayInterval {
		return
	}

	lines := [3]string{
		c.modeLine(),
		c.statusLine(),
		c.runtimeLine(now),
	}

	for i, line := range lines {
		if line != c.display.lines[i] || c.display.forceUpdate {
			c.feedback.Print(i, line)
			c.display.lines[i] = line
		}
	}

	c.display.lastUpdate = now
	c.display.forceUpdate = false
}

func (c *Controller) modeLine() string {
	mark := func(m ScoringMode) byte {
		if c.mode == m {
			return '#'
		}
		return '.'
	}

	source := "in"
	if c.storageSource {
		source = "st"
	}

	flap := "closed"
	if c.flapOpen {
		flap = "open"
	}

	return fmt.Sprintf("%c%c%c%c %s flap:%s",
		mark(ModeCollection), mark(ModeMidGoal),
		mark(ModeLowGoal), mark(ModeTopGoal),
		source, flap)
}

func (c *Controller) statusLine() string {
	front := "."
	back := "."
	if c.active {
		switch c.direction {
		case DirectionFront:
			front = "#"
		case DirectionBack:
			back = "#"
		}
	}

	return fmt.Sprintf("F%s B%s %s %s",
		front, back, c.storageVisual(), c.direction)
}

func (c *Controller) runtimeLine(now time.Duration) string {
	if !c.active {
		return fmt.Sprintf("%s READY", c.mode)
	}

	runtime := (now - c.startTime).Seconds()
	return fmt.Sprintf("%s %.1fs", c.mode, runtime)
}

func (c *Controller) storageVisual() string {
	var b strings.Builder
	for i := 0; i < c.cfg.StorageCapacity; i++ {
		if i < c.storageCount {
			b.WriteByte('o')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
