package hydration

// MaxCapacity is the volume of a full glass.
const MaxCapacity = 100

// A Glass holds a volume of liquid between 0 and MaxCapacity.
type Glass struct {
	volume int
}

// NewGlass creates a glass that initially holds the given volume. The volume
// is clamped into the valid range.
func NewGlass(volume int) *Glass {
	g := &Glass{}
	g.SetVolume(volume)

	return g
}

// Volume returns the current volume.
func (g *Glass) Volume() int {
	return g.volume
}

// SetVolume sets the volume, clamping it to [0, MaxCapacity]. Out of range
// values are never rejected.
func (g *Glass) SetVolume(volume int) {
	switch {
	case volume < 0:
		g.volume = 0
	case volume > MaxCapacity:
		g.volume = MaxCapacity
	default:
		g.volume = volume
	}
}

// Fill fills the glass up to MaxCapacity.
func (g *Glass) Fill() {
	g.SetVolume(MaxCapacity)
}

// IsEmpty returns true if there is no liquid left.
func (g *Glass) IsEmpty() bool {
	return g.volume == 0
}
