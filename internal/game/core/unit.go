package core

import (
	"fmt"
	"strings"
)

// UnitKind is the type of a combat unit.
type UnitKind int

const (
	Marines UnitKind = iota
	AntiTank
	Tank
)

// UnitKinds lists every buildable kind in menu order.
var UnitKinds = [3]UnitKind{Marines, AntiTank, Tank}

// OddsUnknown is returned by Odds for a defender it has no entry for.
const OddsUnknown = -1.0

type unitStats struct {
	goldCost     int
	movementCost int
	name         string
	carriesFlags bool
}

var statsByKind = [...]unitStats{
	Marines:  {goldCost: 1, movementCost: 6, name: "Marines", carriesFlags: true},
	AntiTank: {goldCost: 2, movementCost: 4, name: "Antitank"},
	Tank:     {goldCost: 3, movementCost: 3, name: "Tank"},
}

// oddsTable[attacker][defender] is the attacker's chance to win, in sixths.
var oddsTable = [3][3]float64{
	Marines:  {Marines: 3.0 / 6.0, AntiTank: 4.0 / 6.0, Tank: 2.0 / 6.0},
	AntiTank: {Marines: 2.0 / 6.0, AntiTank: 3.0 / 6.0, Tank: 4.0 / 6.0},
	Tank:     {Marines: 4.0 / 6.0, AntiTank: 2.0 / 6.0, Tank: 3.0 / 6.0},
}

func (k UnitKind) Valid() bool { return k >= Marines && k <= Tank }

func (k UnitKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("UnitKind(%d)", int(k))
	}
	return statsByKind[k].name
}

// GoldCost is the price of spawning a unit of this kind.
func (k UnitKind) GoldCost() int {
	if !k.Valid() {
		return 0
	}
	return statsByKind[k].goldCost
}

// MovementCost is the number of movement points one step of this kind costs.
func (k UnitKind) MovementCost() int {
	if !k.Valid() {
		return 0
	}
	return statsByKind[k].movementCost
}

// ParseUnitKind maps a unit name (case-insensitive) to its kind.
func ParseUnitKind(s string) (UnitKind, error) {
	for _, k := range UnitKinds {
		if strings.EqualFold(s, statsByKind[k].name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnitKind, s)
}

// Unit is a combat unit standing on a tile.
type Unit struct {
	Owner Player
	Kind  UnitKind
	flag  *Flag
}

// NewUnit creates a unit of the given kind for owner.
func NewUnit(kind UnitKind, owner Player) *Unit {
	return &Unit{Owner: owner, Kind: kind}
}

func (u *Unit) GoldCost() int     { return u.Kind.GoldCost() }
func (u *Unit) MovementCost() int { return u.Kind.MovementCost() }
func (u *Unit) Name() string      { return u.Kind.String() }

// Flag returns the flag the unit is carrying, if any.
func (u *Unit) Flag() *Flag { return u.flag }

// CanCarryFlag reports whether the unit may pick up f. Only Marines carry
// flags, and only the enemy's.
func (u *Unit) CanCarryFlag(f *Flag) bool {
	if f == nil || !u.Kind.Valid() || !statsByKind[u.Kind].carriesFlags {
		return false
	}
	return f.Owner != u.Owner
}

// Odds returns the probability that u wins when attacking defender, or
// OddsUnknown when either kind is not in the table.
func (u *Unit) Odds(defender *Unit) float64 {
	if defender == nil || !u.Kind.Valid() || !defender.Kind.Valid() {
		return OddsUnknown
	}
	return oddsTable[u.Kind][defender.Kind]
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s %s", u.Owner, u.Name())
}
