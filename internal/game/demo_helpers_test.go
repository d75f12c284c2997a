package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/processor"
	"github.com/mitchelldurbincs/groundwar/internal/testutil"
)

func TestRandomCommands_OpeningIsLegal(t *testing.T) {
	b := newTestBoard(t)
	rng := testutil.NewTestRNG(1)

	script := RandomCommands(b, rng)
	require.NotEmpty(t, script, "Red can always buy a unit at the start")

	cp := processor.NewCommandProcessor(testutil.NopLogger())
	n, err := cp.ProcessScript(context.Background(), b, script)
	require.NoError(t, err)
	assert.Equal(t, len(script), n)
}

func TestRandomCommands_ClearsLeftoverState(t *testing.T) {
	b := newTestBoard(t)
	place(t, b, 5, 5, core.Tank, core.Red)
	require.True(t, b.ClickTile(b.Tile(5, 5)))

	script := RandomCommands(b, testutil.NewTestRNG(3))
	require.NotEmpty(t, script)
	assert.Equal(t, processor.ClickCommand{X: 5, Y: 5}, script[0])

	require.True(t, b.ClickTile(b.Tile(5, 5)))
	b.Deselect()
	require.True(t, b.PrepareToSpawn(core.AntiTank))
	script = RandomCommands(b, testutil.NewTestRNG(3))
	require.NotEmpty(t, script)
	assert.Equal(t, processor.SpawnCommand{Kind: core.AntiTank}, script[0])
}

func TestRandomCommands_GameOver(t *testing.T) {
	b := newTestBoard(t)
	testutil.PlaceFlag(t, b.Grid(), 2, 7, core.Blue)
	place(t, b, 2, 7, core.Marines, core.Red)
	require.True(t, b.MoveUnit(b.Tile(2, 7), b.Tile(1, 8)))

	assert.Nil(t, RandomCommands(b, testutil.NewTestRNG(1)))
}

func TestRandomCommands_SelfPlayKeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := DefaultGameConfig()
		cfg.Rng = testutil.NewTestRNG(seed)
		cfg.Logger = testutil.NopLogger()
		b, err := NewBoard(context.Background(), cfg)
		require.NoError(t, err)

		rng := testutil.NewTestRNG(seed * 100)
		cp := processor.NewCommandProcessor(testutil.NopLogger())
		for step := 0; step < 500 && !b.GameOver(); step++ {
			script := RandomCommands(b, rng)
			if script == nil {
				break
			}
			_, err := cp.ProcessScript(context.Background(), b, script)
			require.NoError(t, err, "seed %d step %d", seed, step)

			require.Equal(t, 2, testutil.CountFlags(b.Grid()), "flags are never created or lost")
			require.GreaterOrEqual(t, b.Money(core.Red), 0)
			require.GreaterOrEqual(t, b.Money(core.Blue), 0)
			require.GreaterOrEqual(t, b.MovementPoints(), 0)
		}
	}
}

func TestRandomCommands_RestrictsSpawnKinds(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		b := newTestBoard(t)
		script := RandomCommands(b, testutil.NewTestRNG(seed), core.Tank)
		require.NotEmpty(t, script)
		for _, cmd := range script {
			if sc, ok := cmd.(processor.SpawnCommand); ok {
				assert.Equal(t, core.Tank, sc.Kind, "seed %d", seed)
			}
		}
	}
}
