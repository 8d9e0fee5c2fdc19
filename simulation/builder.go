package simulation

import (
	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/sarchlab/thirst/datarecording"
	"github.com/sarchlab/thirst/logging"
	"github.com/sarchlab/thirst/sim"
	"github.com/sarchlab/thirst/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	recordingOn    bool
	eventLogging   bool
	outputFileName string
	logger         zerolog.Logger
}

// MakeBuilder creates a new builder. By default, the simulation records into
// a SQLite file and does not log.
func MakeBuilder() Builder {
	return Builder{
		recordingOn: true,
		logger:      zerolog.Nop(),
	}
}

// WithoutRecording sets the simulation to not record into a database.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
// The .sqlite3 extension is appended.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithLogger sets the logger that narrates the simulation.
func (b Builder) WithLogger(logger zerolog.Logger) Builder {
	b.logger = logger
	return b
}

// WithEventLogging logs every event handled by the engine at debug level.
func (b Builder) WithEventLogging() Builder {
	b.eventLogging = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		compNameIndex: make(map[string]int),
	}

	s.engine = sim.NewSerialEngine()
	if b.eventLogging {
		s.engine.AcceptHook(sim.NewEventLogger(
			logging.ForComponent(b.logger, "engine")))
	}

	s.narrator = tracing.NewNarrator(logging.ForComponent(b.logger, "narrator"))

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "thirst_" + s.id
		}

		s.outputPath = outputPath + ".sqlite3"
		s.dataRecorder = datarecording.New(outputPath)
		s.dayTracer = tracing.NewDayTracer(s.engine, s.dataRecorder)
	}

	return s
}
