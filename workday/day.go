package workday

import (
	"fmt"

	"github.com/sarchlab/thirst/hydration"
	"github.com/sarchlab/thirst/sim"
)

type hourEvent struct {
	*sim.EventBase
}

type goHomeEvent struct {
	*sim.EventBase
}

// A Day is the component that drives the user through the office hours.
// Every working hour is one event. In each hour a thirsty user drinks,
// calling an intern first if the glass is empty, and then works. Once the
// next hour is outside the schedule, the user goes home.
type Day struct {
	*sim.ComponentBase

	engine   sim.Engine
	freq     sim.Freq
	schedule Schedule
	glass    *hydration.Glass
	user     *hydration.User
	thirst   hydration.ThirstPicker

	started  bool
	finished bool
	summary  Summary
}

// Glass returns the glass on the desk.
func (d *Day) Glass() *hydration.Glass {
	return d.glass
}

// User returns the user who works through the day.
func (d *Day) User() *hydration.User {
	return d.user
}

// Schedule returns the schedule of the day.
func (d *Day) Schedule() Schedule {
	return d.schedule
}

// Finished returns true once the user went home.
func (d *Day) Finished() bool {
	return d.finished
}

// Summary returns the summary of the day so far.
func (d *Day) Summary() Summary {
	return d.summary
}

// Start schedules the first hour of the day. A day can only be started once.
func (d *Day) Start() {
	if d.started {
		panic("day " + d.Name() + " already started")
	}

	d.started = true
	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    HookPosDayStart,
		Item:   d.schedule,
	})

	d.scheduleHour(d.schedule.Start())
}

// Handle processes the events of the day.
func (d *Day) Handle(e sim.Event) error {
	switch e := e.(type) {
	case hourEvent:
		d.workHour(e.Time())
	case goHomeEvent:
		d.goHome(e.Time())
	default:
		return fmt.Errorf("%s cannot handle event %T", d.Name(), e)
	}

	return nil
}

func (d *Day) hourOf(t sim.VTimeInSec) int {
	return int(d.freq.Cycle(t))
}

func (d *Day) scheduleHour(hour int) {
	t := d.freq.NCycles(uint64(hour))

	if d.schedule.InWorkingHours(hour) {
		d.engine.Schedule(hourEvent{sim.NewEventBase(t, d)})
		return
	}

	d.engine.Schedule(goHomeEvent{sim.NewSecondaryEventBase(t, d)})
}

func (d *Day) workHour(now sim.VTimeInSec) {
	hour := d.hourOf(now)

	report := HourReport{
		User:         d.user.Name(),
		Hour:         hour,
		WasThirsty:   d.user.IsThirsty(),
		VolumeBefore: d.glass.Volume(),
		Activity:     ActivityWork,
	}

	if d.user.IsThirsty() {
		d.quench(&report)
	}

	if d.schedule.IsLunch(hour) {
		report.Activity = ActivityLunch
		d.user.Rest()
	} else {
		d.user.Work()
	}

	report.VolumeAfter = d.glass.Volume()
	d.summary.Hours++

	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    HookPosHourEnd,
		Item:   report,
	})

	d.scheduleHour(d.hourOf(d.freq.NextTick(now)))
}

func (d *Day) quench(report *HourReport) {
	if d.glass.IsEmpty() {
		hydration.NewIntern().Fill(d.glass)
		report.Refilled = true
		d.summary.Refills++
	}

	report.Requested = d.thirst.Pick()
	report.Drunk = d.user.Drink(d.glass, report.Requested)
	d.summary.TotalDrunk += report.Drunk
}

func (d *Day) goHome(now sim.VTimeInSec) {
	d.finished = true
	d.summary.EndHour = d.hourOf(now)
	d.summary.FinalVolume = d.glass.Volume()

	d.InvokeHook(sim.HookCtx{
		Domain: d,
		Pos:    HookPosDayEnd,
		Item:   d.summary,
	})
}
