package workday

import (
	"github.com/sarchlab/thirst/hydration"
	"github.com/sarchlab/thirst/sim"
)

// Builder can build Days.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	schedule Schedule
	glass    *hydration.Glass
	user     *hydration.User
	thirst   hydration.ThirstPicker
}

// MakeBuilder creates a Builder with an hourly clock and the default
// schedule.
func MakeBuilder() Builder {
	return Builder{
		freq:     sim.PerHour,
		schedule: DefaultSchedule(),
	}
}

// WithEngine sets the engine that runs the day.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the office clock. One cycle is one hour.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithSchedule sets the office hours.
func (b Builder) WithSchedule(schedule Schedule) Builder {
	b.schedule = schedule
	return b
}

// WithGlass sets the glass on the desk. By default, the glass starts empty.
func (b Builder) WithGlass(glass *hydration.Glass) Builder {
	b.glass = glass
	return b
}

// WithUser sets the user who works through the day.
func (b Builder) WithUser(user *hydration.User) Builder {
	b.user = user
	return b
}

// WithThirstPicker sets how much the user drinks at once.
func (b Builder) WithThirstPicker(thirst hydration.ThirstPicker) Builder {
	b.thirst = thirst
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.engine == nil {
		panic("engine is required to build a day")
	}

	if err := b.schedule.Validate(); err != nil {
		panic(err)
	}
}

// Build creates a Day with the given name.
func (b Builder) Build(name string) *Day {
	b.parametersMustBeValid()

	d := &Day{
		ComponentBase: sim.NewComponentBase(name),
		engine:        b.engine,
		freq:          b.freq,
		schedule:      b.schedule,
		glass:         b.glass,
		user:          b.user,
		thirst:        b.thirst,
	}

	if d.glass == nil {
		d.glass = hydration.NewGlass(0)
	}

	if d.user == nil {
		d.user = hydration.NewUser("John Doe", hydration.NoPause{})
	}

	if d.thirst == nil {
		d.thirst = hydration.NewRandomThirst(hydration.DefaultThirstLevels, 0)
	}

	d.summary = Summary{
		User:      d.user.Name(),
		StartHour: b.schedule.Start(),
		EndHour:   b.schedule.Start(),
	}

	return d
}
