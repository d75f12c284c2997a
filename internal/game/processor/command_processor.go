package processor

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

// Board is the command surface of the rules engine. Defined here to avoid
// importing the game package.
type Board interface {
	CurrentPlayer() core.Player
	GameOver() bool
	Tile(x, y int) *core.Tile
	ClickTile(t *core.Tile) bool
	PrepareToSpawn(kind core.UnitKind) bool
	NextTurn() bool
}

// CommandProcessor applies player commands to a board
type CommandProcessor struct {
	logger zerolog.Logger
}

// NewCommandProcessor creates a new command processor
func NewCommandProcessor(logger zerolog.Logger) *CommandProcessor {
	return &CommandProcessor{
		logger: logger.With().Str("component", "CommandProcessor").Logger(),
	}
}

// Process applies cmd for the current player. Commands the rules reject
// leave the board unchanged and return a *core.CommandError wrapping
// core.ErrIllegalCommand or core.ErrGameOver.
func (cp *CommandProcessor) Process(b Board, cmd Command) error {
	player := b.CurrentPlayer()
	if cmd == nil {
		return core.WrapCommandError(player, "nil", fmt.Errorf("%w: no command", core.ErrIllegalCommand))
	}
	if b.GameOver() {
		return core.WrapCommandError(player, cmd.Name(), core.ErrGameOver)
	}

	var err error
	switch c := cmd.(type) {
	case ClickCommand:
		t := b.Tile(c.X, c.Y)
		if t == nil {
			err = fmt.Errorf("%w: no tile at %s", core.ErrIllegalCommand, core.NewCoordinate(c.X, c.Y))
		} else if !b.ClickTile(t) {
			err = fmt.Errorf("%w: click on %s had no effect", core.ErrIllegalCommand, t)
		}
	case SpawnCommand:
		if !b.PrepareToSpawn(c.Kind) {
			err = fmt.Errorf("%w: cannot spawn %s", core.ErrIllegalCommand, c.Kind)
		}
	case EndTurnCommand:
		if !b.NextTurn() {
			err = fmt.Errorf("%w: no movement points spent", core.ErrIllegalCommand)
		}
	default:
		err = fmt.Errorf("%w: unhandled command type %T", core.ErrIllegalCommand, cmd)
	}

	if err != nil {
		wrapped := core.WrapCommandError(player, cmd.Name(), err)
		cp.logger.Debug().Err(wrapped).Msg("Command rejected")
		return wrapped
	}
	cp.logger.Debug().
		Stringer("player", player).
		Str("command", cmd.Name()).
		Msg("Command applied")
	return nil
}

// ProcessScript applies commands in order and stops at the first one that
// is rejected. It returns how many were applied.
func (cp *CommandProcessor) ProcessScript(ctx context.Context, b Board, cmds []Command) (int, error) {
	for i, cmd := range cmds {
		select {
		case <-ctx.Done():
			cp.logger.Warn().Err(ctx.Err()).Msg("Command processing interrupted by context cancellation")
			return i, ctx.Err()
		default:
		}
		if err := cp.Process(b, cmd); err != nil {
			return i, err
		}
	}
	return len(cmds), nil
}
