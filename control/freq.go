package control

import (
	"log"
	"math"
	"time"
)

// Freq defines the type of frequency
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
)

// Period returns the time between two consecutive ticks
func (f Freq) Period() time.Duration {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}
	return time.Duration(float64(time.Second) / float64(f))
}

// Cycle converts a time to the number of ticks passed since time 0.
func (f Freq) Cycle(t time.Duration) uint64 {
	return uint64(math.Round(t.Seconds() * float64(f)))
}

// NextTick returns the first tick time strictly after the given time.
//
//	           Input
//	           [          )
//	|----------|----------|----------|----->
//	                      |
//	                      Output
func (f Freq) NextTick(now time.Duration) time.Duration {
	if now < 0 {
		log.Panic("invalid time")
	}
	count := math.Floor(now.Seconds() * float64(f))
	return time.Duration((count + 1) / float64(f) * float64(time.Second))
}

// NCyclesLater returns the time after N ticks.
func (f Freq) NCyclesLater(n int, now time.Duration) time.Duration {
	return now + time.Duration(n)*f.Period()
}
