package hydration

import "math/rand"

var firstNames = []string{
	"Adam", "Alice", "Alan", "Amanda", "Beatrix", "Bob", "Carol", "Carl",
	"Charlotte", "Charles", "Daniel", "Daniela", "Eve", "Egon", "Emma",
	"Ernest", "Helen", "Hugh", "Mary", "Mike", "Paul", "Phoebe", "Rachel",
	"Richard", "Stephanie", "Steven", "Thomas", "Theresa",
}

var lastNames = []string{
	"Lincoln", "Jordan", "Adams", "Simpson", "Thompson", "Williams", "Smith",
	"Jones", "Davis", "Jackson", "Moore", "Taylor", "Miller", "Garcia",
	"Rodriguez", "Martinez",
}

// RandomName returns a "First Last" name for a user who did not introduce
// themselves.
func RandomName(r *rand.Rand) string {
	return firstNames[r.Intn(len(firstNames))] + " " +
		lastNames[r.Intn(len(lastNames))]
}
