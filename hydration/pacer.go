package hydration

import "time"

// A Pacer suspends the caller for the length of one activity.
type Pacer interface {
	Pause()
}

// SleepPacer pauses by sleeping on the wall clock.
type SleepPacer struct {
	Duration time.Duration
}

// Pause sleeps for the configured duration.
func (p SleepPacer) Pause() {
	if p.Duration <= 0 {
		return
	}

	time.Sleep(p.Duration)
}

// NoPause returns immediately.
type NoPause struct{}

// Pause does nothing.
func (NoPause) Pause() {}
