package hardware

import (
	"errors"
	"fmt"
)

// ErrSensorUnavailable reports that an optical channel did not respond
// during initialization.
var ErrSensorUnavailable = errors.New("optical sensor not responding")

// SensorHandle is a capability token for the optical sensors. A ready
// handle can only be obtained through OpenSensors, which probes both
// channels; the zero value is not ready and yields no port. Controllers
// holding a non-ready handle degrade to a pass-through.
type SensorHandle struct {
	port SensorPort
}

// OpenSensors probes both optical channels and turns their LEDs on. It
// returns a non-ready handle and an error if either channel does not
// respond.
func OpenSensors(port SensorPort) (SensorHandle, error) {
	if port == nil {
		return SensorHandle{}, ErrSensorUnavailable
	}

	for _, ch := range []OpticalChannel{Checkpoint1, Checkpoint2} {
		if !port.Connected(ch) {
			return SensorHandle{},
				fmt.Errorf("checkpoint %d: %w", ch, ErrSensorUnavailable)
		}
	}

	// Full LED power gives the most stable hue readings.
	port.SetLEDBrightness(Checkpoint1, 100)
	port.SetLEDBrightness(Checkpoint2, 100)

	return SensorHandle{port: port}, nil
}

// Ready reports whether the handle went through successful initialization.
func (h SensorHandle) Ready() bool {
	return h.port != nil
}

// Port returns the underlying sensor port, or nil for a non-ready handle.
func (h SensorHandle) Port() SensorPort {
	return h.port
}
