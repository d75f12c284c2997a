package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

// WinConditionChecker handles game over detection and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CapturesFlag reports whether u, having just arrived on dest, wins the game:
// the unit carries a flag and dest is one of its owner's bases.
func (wc *WinConditionChecker) CapturesFlag(u *core.Unit, dest *core.Tile) bool {
	if u == nil || dest == nil || u.Flag() == nil {
		return false
	}
	captured := dest.IsBase() && dest.SpawnableFor(u.Owner)
	if captured {
		wc.logger.Info().
			Stringer("player", u.Owner).
			Stringer("base", dest.Coord).
			Msg("Flag carried home")
	}
	return captured
}

// IsStalemated reports whether p can no longer act: no units on the board and
// no gold to buy one.
func (wc *WinConditionChecker) IsStalemated(grid *core.Grid, purse *core.Purse, p core.Player) bool {
	units := grid.UnitCount(p)
	gold := purse.Get(p)
	stalemated := units == 0 && gold == 0
	wc.logger.Debug().
		Stringer("player", p).
		Int("units", units).
		Int("gold", gold).
		Bool("stalemated", stalemated).
		Msg("Stalemate check complete")
	return stalemated
}
