package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/testutil"
)

func TestBoard_CanAttack(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, 5, 5, core.Tank, core.Red)
	place(t, b, 5, 6, core.Marines, core.Blue)
	place(t, b, 4, 5, core.Marines, core.Red)
	place(t, b, 5, 8, core.Tank, core.Blue)

	assert.True(t, b.CanAttack(b.Tile(5, 5), b.Tile(5, 6)))
	assert.False(t, b.CanAttack(b.Tile(5, 6), b.Tile(5, 5)), "not Blue's turn")
	assert.False(t, b.CanAttack(b.Tile(5, 5), b.Tile(4, 5)), "own unit")
	assert.False(t, b.CanAttack(b.Tile(5, 5), b.Tile(5, 8)), "not adjacent")
	assert.False(t, b.CanAttack(b.Tile(5, 5), b.Tile(6, 5)), "empty")
	assert.False(t, b.CanAttack(nil, b.Tile(5, 6)))

	b.gs.MovementPoints = 0
	assert.True(t, b.CanAttack(b.Tile(5, 5), b.Tile(5, 6)), "attacks ignore the budget")
}

func TestBoard_AttackWins(t *testing.T) {
	src := testutil.NewFixedSource(0.1)
	b := newTestBoard(t)
	b.rng = src
	tank := place(t, b, 5, 5, core.Tank, core.Red)
	place(t, b, 5, 6, core.Marines, core.Blue)

	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	assert.Equal(t, 1, src.Calls(), "one draw per battle")

	assert.Nil(t, b.Tile(5, 5).Unit())
	assert.Same(t, tank, b.Tile(5, 6).Unit(), "winner moves in")
	assert.Equal(t, 9, b.MovementPoints())
	assert.Equal(t, 11, b.Money(core.Red))
	assert.Equal(t, 10, b.Money(core.Blue))
	assert.Equal(t, 1, b.UnitCount(core.Red))
	assert.Zero(t, b.UnitCount(core.Blue))
	assert.False(t, b.GameOver(), "Blue can still buy units")
}

func TestBoard_AttackLoses(t *testing.T) {
	b := newTestBoard(t, 0.9)
	place(t, b, 5, 5, core.Tank, core.Red)
	marines := place(t, b, 5, 6, core.Marines, core.Blue)
	require.True(t, b.ClickTile(b.Tile(5, 5)))

	require.True(t, b.ClickTile(b.Tile(5, 6)), "click an enemy neighbour to attack")

	assert.Nil(t, b.Tile(5, 5).Unit())
	assert.Same(t, marines, b.Tile(5, 6).Unit())
	assert.Nil(t, b.SelectedTile())
	assert.Equal(t, 12, b.MovementPoints(), "a lost battle costs no movement")
	assert.Equal(t, 10, b.Money(core.Red))
	assert.Equal(t, 11, b.Money(core.Blue))
	assert.Equal(t, 1, b.UnitCount(core.Red)+b.UnitCount(core.Blue), "exactly one unit dies")
}

func TestBoard_AttackRollAtOddsLoses(t *testing.T) {
	b := newTestBoard(t, 4.0/6.0)
	place(t, b, 5, 5, core.Tank, core.Red)
	place(t, b, 5, 6, core.Marines, core.Blue)

	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	assert.Nil(t, b.Tile(5, 5).Unit())
	assert.NotNil(t, b.Tile(5, 6).Unit())
}

func TestBoard_AttackWinWithShortBudget(t *testing.T) {
	b := newTestBoard(t, 0)
	marines := place(t, b, 5, 5, core.Marines, core.Red)
	place(t, b, 5, 6, core.AntiTank, core.Blue)
	b.gs.MovementPoints = 3

	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	assert.Same(t, marines, b.Tile(5, 5).Unit(), "attacker stays put")
	assert.Nil(t, b.Tile(5, 6).Unit())
	assert.Equal(t, 3, b.MovementPoints())
	assert.Equal(t, 11, b.Money(core.Red))
}

func TestBoard_OneDrawPerAttack(t *testing.T) {
	src := testutil.NewFixedSource(0.9)
	b := newTestBoard(t)
	b.rng = src
	place(t, b, 5, 5, core.Tank, core.Red)
	place(t, b, 5, 7, core.Tank, core.Red)
	marines := place(t, b, 5, 6, core.Marines, core.Blue)

	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	require.True(t, b.Attack(b.Tile(5, 7), b.Tile(5, 6)))

	assert.Equal(t, 2, src.Calls(), "the repeated last draw still counts")
	assert.Same(t, marines, b.Tile(5, 6).Unit())
	assert.Zero(t, b.UnitCount(core.Red))
	assert.Equal(t, 12, b.Money(core.Blue))
}

func TestBoard_AttackRejected(t *testing.T) {
	src := testutil.NewFixedSource(0)
	b := newTestBoard(t)
	b.rng = src
	place(t, b, 5, 5, core.Tank, core.Red)
	place(t, b, 4, 5, core.Marines, core.Red)

	before := b.GameState()
	assert.False(t, b.Attack(b.Tile(5, 5), b.Tile(4, 5)))
	assert.False(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	assert.Zero(t, src.Calls(), "no draw for a rejected attack")
	assert.Equal(t, before, b.GameState())
	assert.Equal(t, 10, b.Money(core.Red))
}

func TestBoard_StalemateDefender(t *testing.T) {
	b := newTestBoard(t, 0)
	place(t, b, 5, 5, core.Tank, core.Red)
	place(t, b, 5, 6, core.Marines, core.Blue)
	b.purse.Blue = 0

	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, core.Red, winner)
}

func TestBoard_StalemateAttacker(t *testing.T) {
	b := newTestBoard(t, 0.99)
	place(t, b, 5, 5, core.Tank, core.Red)
	place(t, b, 5, 6, core.Marines, core.Blue)
	b.purse.Red = 0

	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	winner, ok := b.Winner()
	require.True(t, ok)
	assert.Equal(t, core.Blue, winner)
}

func TestBoard_NoStalemateWhileUnitsRemain(t *testing.T) {
	b := newTestBoard(t, 0)
	place(t, b, 5, 5, core.Tank, core.Red)
	place(t, b, 5, 6, core.Marines, core.Blue)
	place(t, b, 10, 1, core.Marines, core.Blue)
	b.purse.Blue = 0

	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	assert.False(t, b.GameOver())
}

func TestBoard_DeadCarrierDropsFlag(t *testing.T) {
	b := newTestBoard(t, 0)
	flag := testutil.PlaceFlag(t, b.Grid(), 5, 6, core.Red)
	carrier := place(t, b, 5, 6, core.Marines, core.Blue)
	require.Same(t, flag, carrier.Flag())
	place(t, b, 5, 5, core.AntiTank, core.Red)
	b.gs.MovementPoints = 0

	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))

	assert.Nil(t, b.Tile(5, 6).Unit())
	assert.Same(t, flag, b.Tile(5, 6).Flag(), "flag stays where its carrier fell")
	assert.Equal(t, 3, testutil.CountFlags(b.Grid()))
}

func TestBoard_WinnerPicksUpDroppedFlag(t *testing.T) {
	b := newTestBoard(t, 0)
	testutil.PlaceFlag(t, b.Grid(), 5, 6, core.Blue)
	place(t, b, 5, 6, core.Tank, core.Blue)
	attacker := place(t, b, 5, 5, core.Marines, core.Red)

	// Marines beat a tank two times in six; the draw of 0 always wins.
	require.True(t, b.Attack(b.Tile(5, 5), b.Tile(5, 6)))
	assert.Same(t, attacker, b.Tile(5, 6).Unit())
	require.NotNil(t, attacker.Flag())
	assert.Equal(t, core.Blue, attacker.Flag().Owner)
	assert.Equal(t, 3, testutil.CountFlags(b.Grid()))
}

func TestBoard_EvenOddsConverge(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	cfg := DefaultGameConfig()
	cfg.Rng = testutil.NewTestRNG(42)
	cfg.Logger = testutil.NopLogger()
	b, err := NewBoard(context.Background(), cfg)
	require.NoError(t, err)

	const battles = 2000
	wins := 0
	from, to := b.Tile(5, 5), b.Tile(5, 6)
	for i := 0; i < battles; i++ {
		from.KillUnit()
		to.KillUnit()
		from.SetUnit(core.NewUnit(core.Marines, core.Red))
		to.SetUnit(core.NewUnit(core.Marines, core.Blue))
		b.gs.MovementPoints = 0

		require.True(t, b.Attack(from, to))
		if from.Unit() != nil {
			wins++
		}
	}

	rate := float64(wins) / battles
	assert.InDelta(t, 0.5, rate, 0.05, "marines against marines win half the time")
}
