package game

import "github.com/mitchelldurbincs/groundwar/internal/game/core"

// GameState is the mutable turn state of a match. The grid and purse hold
// everything else.
type GameState struct {
	Turn           int
	Current        core.Player
	MovementPoints int

	// Selected is the tile whose unit is about to move or attack.
	Selected *core.Tile

	// PendingSpawn is the unit kind waiting to be placed; valid while
	// SpawnPending is set.
	PendingSpawn core.UnitKind
	SpawnPending bool

	Winner    core.Player
	HasWinner bool
}

func (gs *GameState) clearPending() {
	gs.PendingSpawn = 0
	gs.SpawnPending = false
}
