package processor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/groundwar/internal/game"
	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/processor"
	"github.com/mitchelldurbincs/groundwar/internal/testutil"
)

func newBoard(t *testing.T) *game.Board {
	t.Helper()
	cfg := game.DefaultGameConfig()
	cfg.Rng = testutil.NewFixedSource(0)
	cfg.Logger = testutil.NopLogger()
	b, err := game.NewBoard(context.Background(), cfg)
	require.NoError(t, err)
	return b
}

func TestCommand_Names(t *testing.T) {
	assert.Equal(t, "click (4,7)", processor.ClickCommand{X: 4, Y: 7}.Name())
	assert.Equal(t, "spawn Antitank", processor.SpawnCommand{Kind: core.AntiTank}.Name())
	assert.Equal(t, "end turn", processor.EndTurnCommand{}.Name())
	assert.Equal(t, processor.ClickCommand{X: 2, Y: 3}, processor.ClickTile(core.NewCoordinate(2, 3)))
}

func TestProcess_SpawnAndMove(t *testing.T) {
	b := newBoard(t)
	cp := processor.NewCommandProcessor(testutil.NopLogger())

	require.NoError(t, cp.Process(b, processor.SpawnCommand{Kind: core.Tank}))
	require.NoError(t, cp.Process(b, processor.ClickCommand{X: 1, Y: 8}))
	assert.Equal(t, core.Tank, b.Tile(1, 8).Unit().Kind)
	assert.Equal(t, 7, b.Money(core.Red))

	require.NoError(t, cp.Process(b, processor.ClickCommand{X: 1, Y: 8}))
	require.NoError(t, cp.Process(b, processor.ClickCommand{X: 2, Y: 7}))
	assert.NotNil(t, b.Tile(2, 7).Unit())
	assert.Equal(t, 9, b.MovementPoints())

	require.NoError(t, cp.Process(b, processor.EndTurnCommand{}))
	assert.Equal(t, core.Blue, b.CurrentPlayer())
}

func TestProcess_Rejections(t *testing.T) {
	b := newBoard(t)
	cp := processor.NewCommandProcessor(testutil.NopLogger())

	tests := []struct {
		name string
		cmd  processor.Command
	}{
		{"OffMap", processor.ClickCommand{X: 0, Y: 0}},
		{"OutOfBounds", processor.ClickCommand{X: 40, Y: -1}},
		{"EmptyTile", processor.ClickCommand{X: 5, Y: 5}},
		{"UnknownKind", processor.SpawnCommand{Kind: core.UnitKind(8)}},
		{"EndTurnUnspent", processor.EndTurnCommand{}},
		{"Nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := b.GameState()
			err := cp.Process(b, tt.cmd)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrIllegalCommand)

			var cmdErr *core.CommandError
			require.True(t, errors.As(err, &cmdErr))
			assert.Equal(t, core.Red, cmdErr.Player)
			assert.Equal(t, before, b.GameState())
		})
	}
}

func TestProcess_GameOver(t *testing.T) {
	b := newBoard(t)
	cp := processor.NewCommandProcessor(testutil.NopLogger())
	testutil.PlaceFlag(t, b.Grid(), 2, 7, core.Blue)
	testutil.PlaceUnit(t, b.Grid(), 2, 7, core.Marines, core.Red)

	n, err := cp.ProcessScript(context.Background(), b, []processor.Command{
		processor.ClickCommand{X: 2, Y: 7},
		processor.ClickCommand{X: 1, Y: 8},
		processor.EndTurnCommand{},
	})
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, core.ErrGameOver)
	assert.True(t, b.GameOver())
}

func TestProcessScript_StopsAtFirstRejection(t *testing.T) {
	b := newBoard(t)
	cp := processor.NewCommandProcessor(testutil.NopLogger())

	n, err := cp.ProcessScript(context.Background(), b, []processor.Command{
		processor.SpawnCommand{Kind: core.Marines},
		processor.ClickCommand{X: 5, Y: 5},
		processor.ClickCommand{X: 0, Y: 7},
	})
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, core.ErrIllegalCommand)
	assert.Nil(t, b.Tile(0, 7).Unit(), "later commands are not applied")
}

func TestProcessScript_Cancelled(t *testing.T) {
	b := newBoard(t)
	cp := processor.NewCommandProcessor(testutil.NopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := cp.ProcessScript(ctx, b, []processor.Command{processor.SpawnCommand{Kind: core.Marines}})
	assert.Zero(t, n)
	assert.ErrorIs(t, err, context.Canceled)
	_, pending := b.PendingSpawn()
	assert.False(t, pending)
}
