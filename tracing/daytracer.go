package tracing

import (
	"github.com/sarchlab/thirst/datarecording"
	"github.com/sarchlab/thirst/sim"
	"github.com/sarchlab/thirst/workday"
)

// Tables written by the DayTracer.
const (
	HourTable    = "workday_hours"
	SummaryTable = "workday_summary"
)

type hourTableEntry struct {
	User         string
	Hour         int
	Time         float64
	Activity     string
	WasThirsty   bool
	Refilled     bool
	Requested    int
	Drunk        int
	VolumeBefore int
	VolumeAfter  int
}

type summaryTableEntry struct {
	User        string
	StartHour   int
	EndHour     int
	EndTime     float64
	Hours       int
	Refills     int
	TotalDrunk  int
	FinalVolume int
}

// DayTracer stores every hour and the summary of workdays into a data
// recorder.
type DayTracer struct {
	timeTeller sim.TimeTeller
	backend    datarecording.DataRecorder
}

// NewDayTracer creates a DayTracer and the tables it writes.
func NewDayTracer(
	timeTeller sim.TimeTeller,
	backend datarecording.DataRecorder,
) *DayTracer {
	t := &DayTracer{
		timeTeller: timeTeller,
		backend:    backend,
	}

	backend.CreateTable(HourTable, hourTableEntry{})
	backend.CreateTable(SummaryTable, summaryTableEntry{})

	return t
}

// StartDay does nothing. The schedule is implied by the hours.
func (t *DayTracer) StartDay(_ string, _ workday.Schedule) {}

// EndHour records one hour.
func (t *DayTracer) EndHour(report workday.HourReport) {
	t.backend.InsertData(HourTable, hourTableEntry{
		User:         report.User,
		Hour:         report.Hour,
		Time:         float64(t.timeTeller.CurrentTime()),
		Activity:     string(report.Activity),
		WasThirsty:   report.WasThirsty,
		Refilled:     report.Refilled,
		Requested:    report.Requested,
		Drunk:        report.Drunk,
		VolumeBefore: report.VolumeBefore,
		VolumeAfter:  report.VolumeAfter,
	})
}

// EndDay records the summary and flushes the backend.
func (t *DayTracer) EndDay(summary workday.Summary) {
	t.backend.InsertData(SummaryTable, summaryTableEntry{
		User:        summary.User,
		StartHour:   summary.StartHour,
		EndHour:     summary.EndHour,
		EndTime:     float64(t.timeTeller.CurrentTime()),
		Hours:       summary.Hours,
		Refills:     summary.Refills,
		TotalDrunk:  summary.TotalDrunk,
		FinalVolume: summary.FinalVolume,
	})

	t.backend.Flush()
}
