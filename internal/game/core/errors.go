package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidLayout      = errors.New("invalid board layout")
	ErrUnknownTerrain     = errors.New("unknown terrain character")
	ErrNoSpawnNeighbor    = errors.New("spawnable tile has no adjacent spawn tile")
	ErrFlagPresent        = errors.New("tile already holds a flag")
	ErrUnknownUnitKind    = errors.New("unknown unit kind")
	ErrIllegalCommand     = errors.New("illegal command")
	ErrGameOver           = errors.New("game is over")
)

// CommandError records which player's command failed and why.
type CommandError struct {
	Player  Player
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Player, e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// WrapCommandError attaches player and command context to err. A nil err
// stays nil.
func WrapCommandError(p Player, command string, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Player: p, Command: command, Err: err}
}

// WrapLayoutError attaches the offending layout cell to err.
func WrapLayoutError(x, y int, c byte, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("layout cell (%d,%d) %q: %w", x, y, c, err)
}
