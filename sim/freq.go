package sim

import (
	"log"
	"math"
)

// Freq defines the type of frequency
type Freq float64

// Hz is the unit of frequency.
const Hz Freq = 1

// PerHour is a frequency of one tick every simulated hour.
const PerHour Freq = Hz / 3600

// Period returns the time between two consecutive ticks
func (f Freq) Period() VTimeInSec {
	if f == 0 {
		log.Panic("frequency cannot be 0")
	}

	return VTimeInSec(1.0 / f)
}

// Cycle converts a time to the number of cycles passed since time 0.
func (f Freq) Cycle(time VTimeInSec) uint64 {
	return uint64(math.Round(float64(time) * float64(f)))
}

// NCycles returns the time of the n-th tick after time 0.
func (f Freq) NCycles(n uint64) VTimeInSec {
	return VTimeInSec(float64(n) / float64(f))
}

// NextTick returns the next tick time.
//
//	               Input
//	               [          )
//	    |----------|----------|----------|----->
//	                          |
//	                          Output
func (f Freq) NextTick(now VTimeInSec) VTimeInSec {
	if math.IsNaN(float64(now)) {
		log.Panic("invalid time")
	}

	count := math.Floor(math.Round(float64(now)*10*float64(f)) / 10)

	return VTimeInSec((count + 1) / float64(f))
}
