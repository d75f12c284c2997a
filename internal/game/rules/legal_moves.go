package rules

import "github.com/mitchelldurbincs/groundwar/internal/game/core"

// Highlight is a bit set of overlays drawn on a tile.
type Highlight int

const (
	HighlightNone     Highlight = 0
	HighlightSelected Highlight = 1 << (iota - 1)
	HighlightMovable
	HighlightAttackable
)

func (h Highlight) String() string {
	switch h {
	case HighlightNone:
		return "None"
	case HighlightSelected:
		return "Selected"
	case HighlightMovable:
		return "Movable"
	case HighlightAttackable:
		return "Attackable"
	default:
		return "Mixed"
	}
}

// Rules is the part of the board the calculator consults. Defined here to
// avoid importing the game package.
type Rules interface {
	CurrentPlayer() core.Player
	CanMove(u *core.Unit) bool
	ValidMove(from, to *core.Tile) bool
	CanAttack(from, to *core.Tile) bool
	CanSpawnOn(u *core.Unit, t *core.Tile) bool
}

// Step is a move or attack from one tile to an adjacent one.
type Step struct {
	From *core.Tile
	To   *core.Tile
}

// LegalMoveCalculator computes legal moves for the current player
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// Highlight returns the overlay for t given the selected tile. Neighbours of
// the selection are movable when open, otherwise attackable when an attack
// from the selection would be legal.
func (lmc *LegalMoveCalculator) Highlight(r Rules, selected, t *core.Tile) Highlight {
	if selected == nil || t == nil {
		return HighlightNone
	}
	if t == selected {
		return HighlightSelected
	}
	if !selected.IsAdjacent(t) {
		return HighlightNone
	}
	if t.OpenForMovement() {
		return HighlightMovable
	}
	if r.CanAttack(selected, t) {
		return HighlightAttackable
	}
	return HighlightNone
}

// Moves lists every legal move for the current player, in column-major tile
// order and clockwise neighbour order.
func (lmc *LegalMoveCalculator) Moves(grid *core.Grid, r Rules) []Step {
	var out []Step
	for _, from := range lmc.movableTiles(grid, r) {
		for _, to := range from.Neighbors() {
			if r.ValidMove(from, to) {
				out = append(out, Step{From: from, To: to})
			}
		}
	}
	return out
}

// Attacks lists every legal attack for the current player.
func (lmc *LegalMoveCalculator) Attacks(grid *core.Grid, r Rules) []Step {
	var out []Step
	for _, from := range grid.Tiles() {
		if u := from.Unit(); u == nil || u.Owner != r.CurrentPlayer() {
			continue
		}
		for _, to := range from.Neighbors() {
			if r.CanAttack(from, to) {
				out = append(out, Step{From: from, To: to})
			}
		}
	}
	return out
}

// SpawnTargets lists the tiles where the current player could place a unit
// of the given kind right now.
func (lmc *LegalMoveCalculator) SpawnTargets(grid *core.Grid, r Rules, kind core.UnitKind) []*core.Tile {
	candidate := core.NewUnit(kind, r.CurrentPlayer())
	var out []*core.Tile
	for _, t := range grid.Tiles() {
		if r.CanSpawnOn(candidate, t) {
			out = append(out, t)
		}
	}
	return out
}

func (lmc *LegalMoveCalculator) movableTiles(grid *core.Grid, r Rules) []*core.Tile {
	var out []*core.Tile
	for _, t := range grid.Tiles() {
		if r.CanMove(t.Unit()) {
			out = append(out, t)
		}
	}
	return out
}
