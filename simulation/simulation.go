// Package simulation puts the engine, the recorder and the tracers together.
package simulation

import (
	"github.com/sarchlab/thirst/datarecording"
	"github.com/sarchlab/thirst/sim"
	"github.com/sarchlab/thirst/tracing"
)

// A Simulation provides the service requires to define a simulation.
type Simulation struct {
	id         string
	engine     sim.Engine
	outputPath string

	dataRecorder datarecording.DataRecorder
	dayTracer    *tracing.DayTracer
	narrator     *tracing.Narrator

	components    []sim.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation. It is nil
// if recording is disabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// OutputPath returns the database file, or an empty string if recording is
// disabled.
func (s *Simulation) OutputPath() string {
	return s.outputPath
}

// RegisterComponent registers a component with the simulation. The component
// is narrated and, if recording is enabled, traced into the database.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	tracing.CollectTrace(c, s.narrator)

	if s.dayTracer != nil {
		tracing.CollectTrace(c, s.dayTracer)
	}
}

// Components returns all the registered components.
func (s *Simulation) Components() []sim.Component {
	return s.components
}

// GetComponentByName returns the component with the given name, or nil if
// no such component is registered.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	i, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[i]
}

// Run runs the engine until no event is left.
func (s *Simulation) Run() error {
	return s.engine.Run()
}

// Terminate ends the simulation and closes the data recorder.
func (s *Simulation) Terminate() {
	s.engine.Finished()

	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}
