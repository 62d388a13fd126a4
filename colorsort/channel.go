package colorsort

import "time"

// sensorChannel tracks one optical checkpoint: whether a ball is in front
// of it, when the ball arrived, and the recent classification ring buffer
// used for debouncing.
type sensorChannel struct {
	triggered   bool
	triggerTime time.Duration

	buffer []BallColor
	index  int
}

func newSensorChannel(depth int) *sensorChannel {
	ch := &sensorChannel{
		buffer: make([]BallColor, depth),
	}
	ch.clearBuffer()
	return ch
}

// addSample pushes a classification into the ring buffer and returns the
// confirmed color, or ColorUnknown when the buffer is not unanimous. A
// color confirms only when every entry equals it; Unknown and NoBall never
// confirm.
func (ch *sensorChannel) addSample(color BallColor) BallColor {
	ch.buffer[ch.index] = color
	ch.index = (ch.index + 1) % len(ch.buffer)

	if color == ColorUnknown || color == ColorNoBall {
		return ColorUnknown
	}

	for _, c := range ch.buffer {
		if c != color {
			return ColorUnknown
		}
	}

	return color
}

func (ch *sensorChannel) clearBuffer() {
	for i := range ch.buffer {
		ch.buffer[i] = ColorNoBall
	}
	ch.index = 0
}

func (ch *sensorChannel) reset() {
	ch.triggered = false
	ch.triggerTime = 0
	ch.clearBuffer()
}
