package hydration

import (
	"math/rand"
)

// DefaultThirstLevels are the amounts a user may want to drink at once.
var DefaultThirstLevels = []int{10, 20, 30, 40, 50}

// A ThirstPicker decides how much a thirsty user wants to drink.
type ThirstPicker interface {
	Pick() int
}

// RandomThirst picks uniformly from a fixed set of levels.
type RandomThirst struct {
	levels []int
	rand   *rand.Rand
}

// NewRandomThirst creates a RandomThirst over the given levels, seeded with
// seed. It panics if no level is given.
func NewRandomThirst(levels []int, seed int64) *RandomThirst {
	if len(levels) == 0 {
		panic("at least one thirst level is required")
	}

	return &RandomThirst{
		levels: append([]int(nil), levels...),
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// Levels returns the levels the picker chooses from.
func (t *RandomThirst) Levels() []int {
	return append([]int(nil), t.levels...)
}

// Pick returns one of the levels.
func (t *RandomThirst) Pick() int {
	return t.levels[t.rand.Intn(len(t.levels))]
}

// FixedThirst always wants the same amount.
type FixedThirst int

// Pick returns the fixed amount.
func (t FixedThirst) Pick() int {
	return int(t)
}
