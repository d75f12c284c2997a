package processor

import (
	"fmt"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

// Command is one player input.
type Command interface {
	Name() string
}

// ClickCommand clicks the tile at board coordinate (X, Y).
type ClickCommand struct {
	X, Y int
}

func (c ClickCommand) Name() string { return fmt.Sprintf("click %s", core.NewCoordinate(c.X, c.Y)) }

// SpawnCommand toggles a pending spawn of Kind.
type SpawnCommand struct {
	Kind core.UnitKind
}

func (c SpawnCommand) Name() string { return "spawn " + c.Kind.String() }

// EndTurnCommand passes control to the other player.
type EndTurnCommand struct{}

func (EndTurnCommand) Name() string { return "end turn" }

// ClickTile is a convenience for clicking a coordinate.
func ClickTile(c core.Coordinate) ClickCommand {
	return ClickCommand{X: c.X, Y: c.Y}
}
