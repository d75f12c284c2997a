package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

func TestCombatResolvedEvent(t *testing.T) {
	att := core.NewUnit(core.Tank, core.Red)
	def := core.NewUnit(core.Marines, core.Blue)
	from, to := core.NewCoordinate(3, 7), core.NewCoordinate(4, 7)

	tests := []struct {
		name    string
		won     bool
		winner  core.Player
		summary string
	}{
		{"attacker wins", true, core.Red, "Red Tank defeated Blue Marines at (4,7)"},
		{"defender holds", false, core.Blue, "Blue Marines held (4,7) against Red Tank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewCombatResolvedEvent("g", 3, att, def, from, to, 4.0/6.0, 0.5, tt.won)
			assert.Equal(t, TypeCombatResolved, e.Type())
			assert.Equal(t, "Red", e.Metadata.Player)
			assert.Equal(t, 3, e.Metadata.Turn)
			assert.Equal(t, tt.winner, e.Winner())
			assert.Equal(t, tt.summary, e.Summary())
		})
	}
}

func TestTurnEndedEventNextPlayer(t *testing.T) {
	e := NewTurnEndedEvent("g", core.Blue, 4, 3, 1)
	assert.Equal(t, core.Red, e.Next)
	assert.Equal(t, "Blue", e.Metadata.Player)
	assert.Equal(t, 3, e.PointsUnspent)
	assert.Equal(t, 1, e.GoldCollected)
}

func TestUnitEventsCopyUnitState(t *testing.T) {
	u := core.NewUnit(core.AntiTank, core.Blue)
	spawned := NewUnitSpawnedEvent("g", 2, u, core.NewCoordinate(9, 0))
	assert.Equal(t, 2, spawned.Cost)
	assert.Equal(t, core.Blue, spawned.Owner)

	moved := NewUnitMovedEvent("g", 2, u, core.NewCoordinate(9, 0), core.NewCoordinate(9, 1))
	assert.Equal(t, 4, moved.Cost)
	assert.False(t, moved.CarryingFlag)
}
