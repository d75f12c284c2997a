package core

import "fmt"

// Player identifies one of the two sides of a match.
type Player int

const (
	Red Player = iota
	Blue
)

// Players lists both sides in turn order.
var Players = [2]Player{Red, Blue}

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Red {
		return Blue
	}
	return Red
}

func (p Player) Valid() bool { return p == Red || p == Blue }

func (p Player) String() string {
	switch p {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	default:
		return fmt.Sprintf("Player(%d)", int(p))
	}
}

// Purse holds the gold of both players.
type Purse struct {
	Red  int
	Blue int
}

// NewPurse gives both players the same starting gold.
func NewPurse(start int) Purse {
	return Purse{Red: start, Blue: start}
}

// Get returns the gold held by p. Unknown players hold nothing.
func (m *Purse) Get(p Player) int {
	switch p {
	case Red:
		return m.Red
	case Blue:
		return m.Blue
	default:
		return 0
	}
}

// Add credits n gold to p.
func (m *Purse) Add(p Player, n int) {
	switch p {
	case Red:
		m.Red += n
	case Blue:
		m.Blue += n
	}
}

// Spend debits n gold from p. It returns false and leaves the purse untouched
// when p cannot afford it.
func (m *Purse) Spend(p Player, n int) bool {
	if !p.Valid() || n < 0 || m.Get(p) < n {
		return false
	}
	m.Add(p, -n)
	return true
}
