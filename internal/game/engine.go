package game

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/events"
	"github.com/mitchelldurbincs/groundwar/internal/game/rules"
)

// RandomSource supplies the uniform draws used to resolve combat. *rand.Rand
// satisfies it.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// GameConfig configures a single match.
type GameConfig struct {
	StartMoney     int
	MovementPoints int

	// Pixel geometry; W and H are taken from the map.
	TileRadius int
	OriginX    int
	OriginY    int

	Rng      RandomSource     // nil: seeded from the clock
	Logger   zerolog.Logger
	EventBus *events.EventBus // nil: the board creates its own
	GameID   string           // empty: a random UUID
}

// DefaultGameConfig returns the standard rules and geometry.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		StartMoney:     10,
		MovementPoints: 12,
		TileRadius:     40,
		OriginX:        175,
		OriginY:        0,
		Logger:         zerolog.Nop(),
	}
}

// Board is the Ground War rules engine: the map, both purses and the turn
// state, mutated only through its command methods. It is not safe for
// concurrent use.
type Board struct {
	grid   *core.Grid
	layout core.HexLayout
	purse  core.Purse
	gs     GameState

	fullMovementPoints int

	rng           RandomSource
	logger        zerolog.Logger
	eventBus      *events.EventBus
	gameID        string
	winCondition  *rules.WinConditionChecker
	legalMoves    *rules.LegalMoveCalculator
	production    *ProductionManager
	turnProcessor *TurnProcessor
}

// NewBoard loads the fixed map and starts a match with Red to move.
func NewBoard(ctx context.Context, cfg GameConfig) (*Board, error) {
	return NewBoardInitializer(cfg).Initialize(ctx)
}

// Grid exposes the tiles for rendering. Callers must not mutate it.
func (b *Board) Grid() *core.Grid { return b.grid }

// Layout returns the pixel geometry of the board.
func (b *Board) Layout() core.HexLayout { return b.layout }

// Tile returns the tile at (x, y), or nil off the map.
func (b *Board) Tile(x, y int) *core.Tile { return b.grid.GetTile(x, y) }

// TileAt returns the tile under the given pixel, or nil.
func (b *Board) TileAt(px, py int) *core.Tile {
	c, ok := b.layout.TileAt(px, py)
	if !ok {
		return nil
	}
	return b.grid.GetTile(c.X, c.Y)
}

// TilePosition returns the top-left pixel of the tile at (x, y).
func (b *Board) TilePosition(x, y int) (int, int) { return b.layout.TilePosition(x, y) }

func (b *Board) SelectedTile() *core.Tile { return b.gs.Selected }

// IsSelected reports whether t is the selected tile.
func (b *Board) IsSelected(t *core.Tile) bool { return t != nil && t == b.gs.Selected }

// PendingSpawn returns the unit kind waiting to be placed, if any.
func (b *Board) PendingSpawn() (core.UnitKind, bool) {
	return b.gs.PendingSpawn, b.gs.SpawnPending
}

// Money returns the gold held by p.
func (b *Board) Money(p core.Player) int { return b.purse.Get(p) }

// MovementPoints returns what the current player has left this turn.
func (b *Board) MovementPoints() int { return b.gs.MovementPoints }

// FullMovementPoints is the per-turn movement budget.
func (b *Board) FullMovementPoints() int { return b.fullMovementPoints }

func (b *Board) CurrentPlayer() core.Player { return b.gs.Current }

// Turn counts half-turns starting at 1.
func (b *Board) Turn() int { return b.gs.Turn }

func (b *Board) GameID() string { return b.gameID }

func (b *Board) GameOver() bool { return b.gs.HasWinner }

// Winner returns the winning player once the game is over.
func (b *Board) Winner() (core.Player, bool) { return b.gs.Winner, b.gs.HasWinner }

// UnitCount returns how many units p has on the board.
func (b *Board) UnitCount(p core.Player) int { return b.grid.UnitCount(p) }

// EventBus returns the bus the board publishes to.
func (b *Board) EventBus() *events.EventBus { return b.eventBus }

// GameState returns a copy of the turn state.
func (b *Board) GameState() GameState { return b.gs }

// Highlight returns the overlay the renderer should draw on t.
func (b *Board) Highlight(t *core.Tile) rules.Highlight {
	return b.legalMoves.Highlight(b, b.gs.Selected, t)
}

// LegalMoves lists every move the current player can make right now.
func (b *Board) LegalMoves() []rules.Step { return b.legalMoves.Moves(b.grid, b) }

// LegalAttacks lists every attack the current player can make right now.
func (b *Board) LegalAttacks() []rules.Step { return b.legalMoves.Attacks(b.grid, b) }

// SpawnTargets lists where the current player could place a unit of kind.
func (b *Board) SpawnTargets(kind core.UnitKind) []*core.Tile {
	return b.legalMoves.SpawnTargets(b.grid, b, kind)
}

func (b *Board) declareWinner(p core.Player, reason string) {
	if b.gs.HasWinner {
		return
	}
	b.gs.Winner = p
	b.gs.HasWinner = true
	b.gs.Selected = nil
	b.gs.clearPending()

	b.logger.Info().
		Stringer("winner", p).
		Str("reason", reason).
		Int("turn", b.gs.Turn).
		Msg("Game over")
	b.eventBus.Publish(events.NewGameEndedEvent(b.gameID, b.gs.Current, b.gs.Turn, p, reason))
}
