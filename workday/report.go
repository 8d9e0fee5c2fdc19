package workday

import "github.com/sarchlab/thirst/sim"

// HookPosDayStart is triggered when the day is started. The item is the
// Schedule.
var HookPosDayStart = &sim.HookPos{Name: "DayStart"}

// HookPosHourEnd is triggered after every office hour. The item is an
// HourReport.
var HookPosHourEnd = &sim.HookPos{Name: "HourEnd"}

// HookPosDayEnd is triggered when the user goes home. The item is a Summary.
var HookPosDayEnd = &sim.HookPos{Name: "DayEnd"}

// Activity is what the user does during an hour after drinking.
type Activity string

// Activities
const (
	ActivityWork  Activity = "work"
	ActivityLunch Activity = "lunch"
)

// HourReport describes what happened during one office hour.
type HourReport struct {
	User         string
	Hour         int
	WasThirsty   bool
	Refilled     bool
	Requested    int
	Drunk        int
	VolumeBefore int
	VolumeAfter  int
	Activity     Activity
}

// Summary describes a whole day.
type Summary struct {
	User        string
	StartHour   int
	EndHour     int
	Hours       int
	Refills     int
	TotalDrunk  int
	FinalVolume int
}
