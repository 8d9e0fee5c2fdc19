package workday

import (
	"errors"
	"fmt"
)

// A Schedule tells which hours of the day are spent at the office. Hours are
// whole hours of the day, from 0 to 24. The working hours are [Start, End).
type Schedule struct {
	start    int
	end      int
	lunch    int
	hasLunch bool
}

// DefaultSchedule works from 8 until 17 without a lunch break.
func DefaultSchedule() Schedule {
	return NewSchedule(8, 17)
}

// NewSchedule creates a schedule without a lunch break.
func NewSchedule(start, end int) Schedule {
	return Schedule{start: start, end: end}
}

// WithLunch sets the hour spent on lunch instead of work.
func (s Schedule) WithLunch(hour int) Schedule {
	s.lunch = hour
	s.hasLunch = true

	return s
}

// Start returns the first working hour.
func (s Schedule) Start() int {
	return s.start
}

// End returns the hour at which the day is over.
func (s Schedule) End() int {
	return s.end
}

// Lunch returns the lunch hour, if there is one.
func (s Schedule) Lunch() (int, bool) {
	return s.lunch, s.hasLunch
}

// Hours returns the number of hours spent at the office.
func (s Schedule) Hours() int {
	return max(0, s.end-s.start)
}

// InWorkingHours returns true if the hour is within [Start, End).
func (s Schedule) InWorkingHours(hour int) bool {
	return hour >= s.start && hour < s.end
}

// IsLunch returns true if the hour is the lunch hour.
func (s Schedule) IsLunch(hour int) bool {
	return s.hasLunch && hour == s.lunch
}

// Validate reports an inconsistent schedule.
func (s Schedule) Validate() error {
	if s.start < 0 || s.start > 24 {
		return fmt.Errorf("start hour %d is not within 0..24", s.start)
	}

	if s.end < 0 || s.end > 24 {
		return fmt.Errorf("end hour %d is not within 0..24", s.end)
	}

	if s.end < s.start {
		return errors.New("the day cannot end before it starts")
	}

	if s.hasLunch && !s.InWorkingHours(s.lunch) {
		return fmt.Errorf(
			"lunch hour %d is not within the working hours %d..%d",
			s.lunch, s.start, s.end)
	}

	return nil
}
