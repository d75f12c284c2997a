package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/mapgen"
)

// DefaultGrid loads the fixed map, failing the test on error.
func DefaultGrid(t testing.TB) *core.Grid {
	t.Helper()
	grid, err := mapgen.NewDefaultGenerator().GenerateMap()
	require.NoError(t, err)
	return grid
}

// PlaceUnit puts a new unit directly on the tile at (x, y), bypassing spawn
// rules and gold.
func PlaceUnit(t testing.TB, grid *core.Grid, x, y int, kind core.UnitKind, owner core.Player) *core.Unit {
	t.Helper()
	tile := grid.GetTile(x, y)
	require.NotNil(t, tile, "no tile at (%d,%d)", x, y)
	require.Nil(t, tile.Unit(), "tile (%d,%d) already occupied", x, y)
	u := core.NewUnit(kind, owner)
	tile.SetUnit(u)
	return u
}

// PlaceFlag puts a new flag for owner on the tile at (x, y).
func PlaceFlag(t testing.TB, grid *core.Grid, x, y int, owner core.Player) *core.Flag {
	t.Helper()
	tile := grid.GetTile(x, y)
	require.NotNil(t, tile, "no tile at (%d,%d)", x, y)
	require.NoError(t, tile.SpawnFlag(owner))
	return tile.Flag()
}

// CountFlags returns how many flags exist on the grid, carried or resting.
func CountFlags(grid *core.Grid) int {
	n := 0
	for _, t := range grid.Tiles() {
		n += len(t.Flags())
	}
	return n
}
