package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/events"
	"github.com/mitchelldurbincs/groundwar/internal/game/mapgen"
	"github.com/mitchelldurbincs/groundwar/internal/game/rules"
)

// ErrInvalidConfig is returned for game settings no match can start with.
var ErrInvalidConfig = errors.New("invalid game config")

// BoardInitializer handles the setup of a new match
type BoardInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewBoardInitializer creates a new board initializer
func NewBoardInitializer(cfg GameConfig) *BoardInitializer {
	return &BoardInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "Board").Logger(),
	}
}

// Initialize loads the map and returns a board ready for Red's first move
func (bi *BoardInitializer) Initialize(ctx context.Context) (*Board, error) {
	select {
	case <-ctx.Done():
		bi.logger.Error().Err(ctx.Err()).Msg("Board creation cancelled before start")
		return nil, ctx.Err()
	default:
	}

	if err := bi.setupDefaults(); err != nil {
		return nil, err
	}

	grid, err := mapgen.NewDefaultGenerator().GenerateMap()
	if err != nil {
		return nil, fmt.Errorf("map generation failed: %w", err)
	}

	b := bi.createBoard(grid)

	b.eventBus.Publish(events.NewGameStartedEvent(
		b.gameID,
		grid.W,
		grid.H,
		bi.config.StartMoney,
		bi.config.MovementPoints,
	))

	bi.logger.Info().
		Str("game_id", b.gameID).
		Int("start_money", bi.config.StartMoney).
		Int("movement_points", bi.config.MovementPoints).
		Msg("Board created successfully")

	return b, nil
}

// setupDefaults fills in missing configuration
func (bi *BoardInitializer) setupDefaults() error {
	if bi.config.StartMoney < 0 {
		return fmt.Errorf("start money %d: %w", bi.config.StartMoney, ErrInvalidConfig)
	}
	if bi.config.MovementPoints <= 0 {
		bi.config.MovementPoints = DefaultGameConfig().MovementPoints
	}
	if bi.config.TileRadius <= 0 {
		bi.config.TileRadius = DefaultGameConfig().TileRadius
	}

	if bi.config.Rng == nil {
		bi.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		bi.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if bi.config.GameID == "" {
		bi.config.GameID = uuid.NewString()
	}

	if bi.config.EventBus == nil {
		bi.config.EventBus = events.NewEventBus(bi.config.Logger)
	}
	return nil
}

// createBoard wires the board and its components together
func (bi *BoardInitializer) createBoard(grid *core.Grid) *Board {
	cfg := bi.config
	b := &Board{
		grid: grid,
		layout: core.HexLayout{
			Radius:  cfg.TileRadius,
			OriginX: cfg.OriginX,
			OriginY: cfg.OriginY,
			W:       grid.W,
			H:       grid.H,
		},
		purse: core.NewPurse(cfg.StartMoney),
		gs: GameState{
			Turn:           1,
			Current:        core.Red,
			MovementPoints: cfg.MovementPoints,
		},
		fullMovementPoints: cfg.MovementPoints,
		rng:                cfg.Rng,
		logger:             bi.logger.With().Str("game_id", cfg.GameID).Logger(),
		eventBus:           cfg.EventBus,
		gameID:             cfg.GameID,
		winCondition:       rules.NewWinConditionChecker(bi.logger),
		legalMoves:         rules.NewLegalMoveCalculator(),
	}
	b.production = NewProductionManager(b.eventBus, b.gameID, b.logger)
	b.turnProcessor = NewTurnProcessor(b)
	return b
}
