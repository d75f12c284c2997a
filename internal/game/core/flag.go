package core

// Flag is the objective a player defends at their base. Exactly one tile or
// one unit holds a given flag at any time.
type Flag struct {
	Owner Player
}

// NewFlag creates a flag representing owner's base.
func NewFlag(owner Player) *Flag {
	return &Flag{Owner: owner}
}
