package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/events"
)

const (
	goldPerMine  = 1
	combatReward = 1
)

// ProductionManager handles gold income for both players
type ProductionManager struct {
	eventBus *events.EventBus
	gameID   string
	logger   zerolog.Logger
}

// NewProductionManager creates a new production manager
func NewProductionManager(eventBus *events.EventBus, gameID string, logger zerolog.Logger) *ProductionManager {
	return &ProductionManager{
		eventBus: eventBus,
		gameID:   gameID,
		logger:   logger.With().Str("component", "ProductionManager").Logger(),
	}
}

// CollectGoldTiles pays the owner of every unit standing on a gold tile,
// whoever's turn it is. It returns the income per player.
func (pm *ProductionManager) CollectGoldTiles(grid *core.Grid, purse *core.Purse, mover core.Player, turn int) core.Purse {
	var income core.Purse
	for _, t := range grid.Tiles() {
		u := t.Unit()
		if !t.IsGold() || u == nil {
			continue
		}
		purse.Add(u.Owner, goldPerMine)
		income.Add(u.Owner, goldPerMine)
	}

	for _, p := range core.Players {
		if n := income.Get(p); n > 0 {
			pm.publishIncome(purse, mover, turn, p, n, events.GoldSourceMine)
		}
	}

	pm.logger.Debug().
		Int("turn", turn).
		Int("red_income", income.Red).
		Int("blue_income", income.Blue).
		Msg("Gold tiles collected")
	return income
}

// Reward credits the survivor of a battle.
func (pm *ProductionManager) Reward(purse *core.Purse, winner, mover core.Player, turn int) {
	purse.Add(winner, combatReward)
	pm.publishIncome(purse, mover, turn, winner, combatReward, events.GoldSourceCombat)
}

func (pm *ProductionManager) publishIncome(purse *core.Purse, mover core.Player, turn int, p core.Player, amount int, source string) {
	pm.eventBus.Publish(events.NewGoldCollectedEvent(pm.gameID, mover, turn, p, amount, source, purse.Get(p)))
}
