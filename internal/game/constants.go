package game

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/groundwar/internal/config"
)

// GameConfigFromSettings builds a match configuration from the loaded
// application config. A non-zero game.seed makes combat reproducible.
func GameConfigFromSettings(c *config.Config, logger zerolog.Logger) GameConfig {
	cfg := GameConfig{
		StartMoney:     c.Game.StartMoney,
		MovementPoints: c.Game.MovementPoints,
		TileRadius:     c.Board.TileRadius,
		OriginX:        c.Board.OriginX,
		OriginY:        c.Board.OriginY,
		Logger:         logger,
	}
	if c.Game.Seed != 0 {
		cfg.Rng = rand.New(rand.NewSource(c.Game.Seed))
	}
	return cfg
}
