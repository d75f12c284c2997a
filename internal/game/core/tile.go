package core

import "fmt"

// TerrainKind is the immutable terrain of a board cell.
type TerrainKind int

const (
	TerrainNone TerrainKind = iota // no tile (water / off-map)
	TerrainPlain
	TerrainBase
	TerrainMountain
	TerrainGold
	TerrainSpawn
	TerrainSpawnable
)

func (k TerrainKind) String() string {
	switch k {
	case TerrainNone:
		return "None"
	case TerrainPlain:
		return "Plain"
	case TerrainBase:
		return "Base"
	case TerrainMountain:
		return "Mountain"
	case TerrainGold:
		return "Gold"
	case TerrainSpawn:
		return "Spawn"
	case TerrainSpawnable:
		return "Spawnable"
	default:
		return fmt.Sprintf("TerrainKind(%d)", int(k))
	}
}

// noTile marks an absent adjacency or spawn link.
const noTile = -1

// Tile is a single cell of the board. Tiles live in their Grid's arena and
// never move; only the units and flags on them do.
type Tile struct {
	Kind  TerrainKind
	Coord Coordinate
	// BaseOwner is only meaningful for TerrainBase.
	BaseOwner Player

	grid     *Grid
	adjacent [NumDirections]int
	spawnIdx int // TerrainSpawnable: arena index of the linked spawn tile

	unit *Unit
	// Flags resting on the tile. Normally at most one; a dying carrier can
	// drop a second flag next to one it could not pick up.
	flags []*Flag
}

func (t *Tile) IsMountain() bool { return t.Kind == TerrainMountain }
func (t *Tile) IsGold() bool     { return t.Kind == TerrainGold }
func (t *Tile) IsBase() bool     { return t.Kind == TerrainBase }

// Unit returns the occupant, or nil.
func (t *Tile) Unit() *Unit { return t.unit }

// OpenForMovement reports whether a unit may enter the tile.
func (t *Tile) OpenForMovement() bool {
	return t.Kind != TerrainMountain && t.unit == nil
}

// Adjacent returns the neighbour in direction d, or nil at an edge or gap.
func (t *Tile) Adjacent(d Direction) *Tile {
	if d < 0 || d >= NumDirections {
		return nil
	}
	return t.grid.tileAt(t.adjacent[d])
}

// Neighbors returns the existing neighbours in clockwise order.
func (t *Tile) Neighbors() []*Tile {
	out := make([]*Tile, 0, NumDirections)
	for d := Direction(0); d < NumDirections; d++ {
		if n := t.Adjacent(d); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// IsAdjacent reports whether other is one of this tile's neighbours. Tiles
// are compared by identity.
func (t *Tile) IsAdjacent(other *Tile) bool {
	if t == nil || other == nil {
		return false
	}
	for _, idx := range t.adjacent {
		if idx != noTile && &t.grid.T[idx] == other {
			return true
		}
	}
	return false
}

// SpawnTile returns the spawn tile linked to a spawnable tile.
func (t *Tile) SpawnTile() *Tile {
	if t.Kind != TerrainSpawnable {
		return nil
	}
	return t.grid.tileAt(t.spawnIdx)
}

// SpawnableFor reports whether p may place new units here.
func (t *Tile) SpawnableFor(p Player) bool {
	switch t.Kind {
	case TerrainBase:
		return p == t.BaseOwner
	case TerrainSpawnable:
		spawn := t.SpawnTile()
		return spawn != nil && spawn.unit != nil && spawn.unit.Owner == p
	default:
		return false
	}
}

// SetUnit replaces the occupant. An incoming unit picks up the first resting
// flag it is allowed to carry, if it is not carrying one already.
func (t *Tile) SetUnit(u *Unit) {
	t.unit = u
	if u == nil || u.flag != nil {
		return
	}
	for i, f := range t.flags {
		if u.CanCarryFlag(f) {
			u.flag = f
			t.flags = append(t.flags[:i], t.flags[i+1:]...)
			return
		}
	}
}

// TakeUnit removes the occupant, together with any flag it carries, and
// returns it.
func (t *Tile) TakeUnit() *Unit {
	u := t.unit
	t.unit = nil
	return u
}

// KillUnit removes the occupant. A carried flag is dropped onto the tile.
// Gold is not touched. It returns the dead unit, or nil if the tile was empty.
func (t *Tile) KillUnit() *Unit {
	u := t.unit
	if u == nil {
		return nil
	}
	if u.flag != nil {
		t.flags = append(t.flags, u.flag)
		u.flag = nil
	}
	t.unit = nil
	return u
}

// Flag returns the flag visible on this tile: the occupant's carried flag if
// it has one, else a flag resting on the tile.
func (t *Tile) Flag() *Flag {
	if t.unit != nil && t.unit.flag != nil {
		return t.unit.flag
	}
	if len(t.flags) > 0 {
		return t.flags[0]
	}
	return nil
}

// Flags returns every flag on the tile, carried or resting.
func (t *Tile) Flags() []*Flag {
	out := make([]*Flag, 0, len(t.flags)+1)
	if t.unit != nil && t.unit.flag != nil {
		out = append(out, t.unit.flag)
	}
	return append(out, t.flags...)
}

// SpawnFlag places a new flag for owner on the tile. A tile that already
// shows a flag is rejected with ErrFlagPresent.
func (t *Tile) SpawnFlag(owner Player) error {
	if t.Flag() != nil {
		return fmt.Errorf("spawn flag at %s: %w", t.Coord, ErrFlagPresent)
	}
	t.flags = append(t.flags, NewFlag(owner))
	return nil
}

func (t *Tile) String() string {
	return fmt.Sprintf("%s%s", t.Kind, t.Coord)
}
