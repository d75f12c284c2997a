package game

import "github.com/mitchelldurbincs/groundwar/internal/game/core"

// PlayerStats summarises one side of the board.
type PlayerStats struct {
	Player       core.Player
	Gold         int
	Units        int
	UnitsByKind  [len(core.UnitKinds)]int
	FlagsCarried int
	GoldTiles    int // gold tiles occupied by this player's units
}

// Stats counts p's units, carried flags and held gold tiles.
func (b *Board) Stats(p core.Player) PlayerStats {
	s := PlayerStats{Player: p, Gold: b.purse.Get(p)}
	for _, t := range b.grid.Tiles() {
		u := t.Unit()
		if u == nil || u.Owner != p {
			continue
		}
		s.Units++
		if u.Kind.Valid() {
			s.UnitsByKind[u.Kind]++
		}
		if u.Flag() != nil {
			s.FlagsCarried++
		}
		if t.IsGold() {
			s.GoldTiles++
		}
	}
	return s
}
