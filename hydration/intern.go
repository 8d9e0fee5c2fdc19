package hydration

// An Intern refills glasses. Interns carry no state; a new one can be
// summoned every time a glass runs dry.
type Intern struct{}

// NewIntern summons an intern.
func NewIntern() *Intern {
	return &Intern{}
}

// Fill fills the glass.
func (i *Intern) Fill(g *Glass) {
	g.Fill()
}
