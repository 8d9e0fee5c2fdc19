package datarecording

import (
	"os"
	"strings"
	"time"
)

// ExecInfoTable is the table that records how the program ran.
const ExecInfoTable = "exec_info"

const execTimeFormat = "2006-01-02 15:04:05.000000000"

// ExecInfo is a property of the program execution.
type ExecInfo struct {
	Property string
	Value    string
}

// Records program execution
type execRecorder struct {
	tablename string
	recorder  DataRecorder
	entries   []ExecInfo
}

// Start records the start time, the command, and the working directory.
func (e *execRecorder) Start() {
	startTime := time.Now().Format(execTimeFormat)
	e.entries = append(e.entries, ExecInfo{"Start Time", startTime})

	cmd := strings.Join(os.Args, " ")
	e.entries = append(e.entries, ExecInfo{"Command", cmd})

	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	e.entries = append(e.entries, ExecInfo{"Working Directory", cwd})
}

// End writes the recorded properties along with the end time.
func (e *execRecorder) End() {
	for _, entry := range e.entries {
		e.recorder.InsertData(e.tablename, entry)
	}

	endTime := time.Now().Format(execTimeFormat)
	e.recorder.InsertData(e.tablename, ExecInfo{"End Time", endTime})

	e.entries = nil
}

func newExecRecorderWithWriter(writer DataRecorder) *execRecorder {
	e := &execRecorder{
		tablename: ExecInfoTable,
		recorder:  writer,
		entries:   []ExecInfo{},
	}

	e.recorder.CreateTable(e.tablename, ExecInfo{})

	return e
}
