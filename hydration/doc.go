// Package hydration models the actors of a workday hydration simulation: a
// glass that holds a bounded volume of liquid, a user who drinks from it and
// gets thirsty again after working, and an intern who refills it.
//
// Nothing in this package schedules events. The workday package drives these
// types from the simulation engine.
package hydration
