package tracing

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sarchlab/thirst/workday"
)

// Narrator tells the story of a workday through a logger.
type Narrator struct {
	logger zerolog.Logger
}

// NewNarrator creates a Narrator that writes into the logger at info level.
func NewNarrator(logger zerolog.Logger) *Narrator {
	return &Narrator{logger: logger}
}

func clock(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// StartDay announces the office hours.
func (n *Narrator) StartDay(user string, schedule workday.Schedule) {
	n.logger.Info().
		Str("user", user).
		Int("hour", schedule.Start()).
		Msgf("It's %s, let's work until %s",
			clock(schedule.Start()), clock(schedule.End()))
}

// EndHour tells what happened in the hour.
func (n *Narrator) EndHour(r workday.HourReport) {
	logger := n.logger.With().
		Str("user", r.User).
		Int("hour", r.Hour).
		Logger()

	logger.Info().Msgf("It's %s", clock(r.Hour))

	if !r.WasThirsty {
		logger.Info().Msg("not thirsty")
	} else {
		logger.Info().Msg("I'm thirsty")

		if r.Refilled {
			logger.Info().Msg("Glass is empty, where's the intern?")
		}

		logger.Info().
			Int("volume", r.VolumeAfter).
			Msgf("drinking %dml", r.Drunk)
	}

	switch r.Activity {
	case workday.ActivityLunch:
		logger.Info().Msg("lunch break")
	default:
		logger.Info().Msg("working")
	}
}

// EndDay sends the user home.
func (n *Narrator) EndDay(s workday.Summary) {
	n.logger.Info().
		Str("user", s.User).
		Int("hour", s.EndHour).
		Int("refills", s.Refills).
		Int("total_drunk", s.TotalDrunk).
		Msgf("It's %s, go home!", clock(s.EndHour))
}
