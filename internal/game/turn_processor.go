package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/groundwar/internal/game/events"
)

// TurnProcessor handles the hand-over between players
type TurnProcessor struct {
	board  *Board
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(board *Board) *TurnProcessor {
	return &TurnProcessor{
		board:  board,
		logger: board.logger.With().Str("component", "TurnProcessor").Logger(),
	}
}

// EndTurn pays out gold tiles and hands control to the other player with a
// full budget and nothing selected. Callers check that the turn may end.
func (tp *TurnProcessor) EndTurn() {
	b := tp.board
	ended := b.gs.Current
	unspent := b.gs.MovementPoints

	income := b.production.CollectGoldTiles(b.grid, &b.purse, ended, b.gs.Turn)

	b.eventBus.Publish(events.NewTurnEndedEvent(b.gameID, ended, b.gs.Turn, unspent, income.Get(ended)))

	b.gs.Current = ended.Other()
	b.gs.MovementPoints = b.fullMovementPoints
	b.gs.Selected = nil
	b.gs.clearPending()
	b.gs.Turn++

	tp.logger.Info().
		Stringer("ended", ended).
		Stringer("next", b.gs.Current).
		Int("turn", b.gs.Turn).
		Int("red_gold", b.purse.Red).
		Int("blue_gold", b.purse.Blue).
		Msg("Turn advanced")
}
