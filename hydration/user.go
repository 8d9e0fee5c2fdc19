package hydration

// A User drinks from a glass and gets thirsty after every activity.
type User struct {
	name    string
	thirsty bool
	pacer   Pacer
}

// NewUser creates a thirsty user. The pacer decides how long working and
// resting take. A nil pacer makes activities instantaneous.
func NewUser(name string, pacer Pacer) *User {
	if pacer == nil {
		pacer = NoPause{}
	}

	return &User{
		name:    name,
		thirsty: true,
		pacer:   pacer,
	}
}

// Name returns the name of the user.
func (u *User) Name() string {
	return u.name
}

// IsThirsty returns true if the user wants to drink.
func (u *User) IsThirsty() bool {
	return u.thirsty
}

// Drink removes up to amount from the glass and quenches the thirst. The
// thirst is quenched even if nothing is removed. It returns the volume that
// left the glass.
func (u *User) Drink(g *Glass, amount int) int {
	before := g.Volume()

	if amount >= before {
		g.SetVolume(0)
	} else {
		g.SetVolume(before - amount)
	}

	u.thirsty = false

	return before - g.Volume()
}

// Work blocks for the duration of one work session and leaves the user
// thirsty.
func (u *User) Work() {
	u.pacer.Pause()
	u.thirsty = true
}

// Rest takes a break instead of working. A break takes as long as a work
// session and also leaves the user thirsty.
func (u *User) Rest() {
	u.pacer.Pause()
	u.thirsty = true
}
