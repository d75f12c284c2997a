package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/groundwar/internal/config"
	"github.com/mitchelldurbincs/groundwar/internal/game"
	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/testutil"
)

func TestUIGame_TracksLastCombat(t *testing.T) {
	cfg := game.DefaultGameConfig()
	cfg.Rng = testutil.NewFixedSource(0)
	cfg.Logger = testutil.NopLogger()
	b, err := game.NewBoard(context.Background(), cfg)
	require.NoError(t, err)

	g, err := NewUIGame(b)
	require.NoError(t, err)
	assert.Empty(t, g.LastCombat())

	testutil.PlaceUnit(t, b.Grid(), 4, 7, core.Tank, core.Red)
	testutil.PlaceUnit(t, b.Grid(), 4, 6, core.Marines, core.Blue)
	require.True(t, b.Attack(b.Tile(4, 7), b.Tile(4, 6)))

	assert.Equal(t, "Red Tank defeated Blue Marines at (4,6)", g.LastCombat())
}

func TestUIGame_Layout(t *testing.T) {
	require.NoError(t, config.Init(""))
	g := &UIGame{}
	w, h := g.Layout(10, 10)
	assert.Equal(t, 1200, w)
	assert.Equal(t, 700, h)
	assert.Equal(t, "Ground War", WindowTitle())
}
