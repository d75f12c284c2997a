package game

import (
	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/events"
)

// Legality predicates are pure. Every mutator re-checks them, so callers may
// try a command speculatively and act on the boolean result.

// CanMove reports whether u belongs to the current player and the remaining
// budget covers one of its steps.
func (b *Board) CanMove(u *core.Unit) bool {
	return u != nil && u.Owner == b.gs.Current && b.gs.MovementPoints >= u.MovementCost()
}

// ValidMove reports whether the unit on from may step onto to.
func (b *Board) ValidMove(from, to *core.Tile) bool {
	return from != nil && to != nil &&
		b.CanMove(from.Unit()) &&
		to.OpenForMovement() &&
		from.IsAdjacent(to)
}

// MoveUnit steps the unit on from onto the adjacent tile to, spending its
// movement cost and clearing the selection. Carrying a flag onto one of the
// owner's bases wins the game.
func (b *Board) MoveUnit(from, to *core.Tile) bool {
	if b.gs.HasWinner || !b.ValidMove(from, to) {
		b.logger.Debug().
			Stringer("from", tileCoord(from)).
			Stringer("to", tileCoord(to)).
			Msg("Move rejected")
		return false
	}

	u := from.TakeUnit()
	b.gs.MovementPoints -= u.MovementCost()
	to.SetUnit(u)
	b.gs.Selected = nil

	b.logger.Debug().
		Stringer("unit", u).
		Stringer("from", from.Coord).
		Stringer("to", to.Coord).
		Int("movement_points", b.gs.MovementPoints).
		Msg("Unit moved")
	b.eventBus.Publish(events.NewUnitMovedEvent(b.gameID, b.gs.Turn, u, from.Coord, to.Coord))

	if b.winCondition.CapturesFlag(u, to) {
		b.declareWinner(u.Owner, events.EndReasonFlagCaptured)
	}
	return true
}

// CanSpawn reports whether the current player owns u and can afford it.
func (b *Board) CanSpawn(u *core.Unit) bool {
	return u != nil && u.Owner == b.gs.Current && b.purse.Get(b.gs.Current) >= u.GoldCost()
}

// CanSpawnOn reports whether u could be placed on t now.
func (b *Board) CanSpawnOn(u *core.Unit, t *core.Tile) bool {
	return b.CanSpawn(u) && t != nil && t.OpenForMovement() && t.SpawnableFor(b.gs.Current)
}

// PrepareToSpawn toggles the pending spawn. Choosing the pending kind again
// cancels it; choosing an affordable kind replaces it and clears the tile
// selection. It reports whether the pending spawn changed.
func (b *Board) PrepareToSpawn(kind core.UnitKind) bool {
	if b.gs.HasWinner || !kind.Valid() {
		return false
	}
	if b.gs.SpawnPending && b.gs.PendingSpawn == kind {
		b.gs.clearPending()
		return true
	}
	if !b.CanSpawn(core.NewUnit(kind, b.gs.Current)) {
		b.logger.Debug().
			Stringer("kind", kind).
			Int("gold", b.purse.Get(b.gs.Current)).
			Msg("Cannot afford unit")
		return false
	}
	b.gs.PendingSpawn = kind
	b.gs.SpawnPending = true
	b.gs.Selected = nil
	return true
}

// SpawnUnit places the pending unit on t and pays for it.
func (b *Board) SpawnUnit(t *core.Tile) bool {
	if b.gs.HasWinner || !b.gs.SpawnPending {
		return false
	}
	u := core.NewUnit(b.gs.PendingSpawn, b.gs.Current)
	if !b.CanSpawnOn(u, t) || !b.purse.Spend(u.Owner, u.GoldCost()) {
		b.logger.Debug().
			Stringer("unit", u).
			Stringer("at", tileCoord(t)).
			Msg("Spawn rejected")
		return false
	}
	t.SetUnit(u)
	b.gs.clearPending()

	b.logger.Debug().
		Stringer("unit", u).
		Stringer("at", t.Coord).
		Int("gold", b.purse.Get(u.Owner)).
		Msg("Unit spawned")
	b.eventBus.Publish(events.NewUnitSpawnedEvent(b.gameID, b.gs.Turn, u, t.Coord))
	return true
}

// CanAttack reports whether the current player's unit on from may attack the
// enemy unit on the adjacent tile to.
func (b *Board) CanAttack(from, to *core.Tile) bool {
	if from == nil || to == nil {
		return false
	}
	att, def := from.Unit(), to.Unit()
	return att != nil && def != nil &&
		att.Owner == b.gs.Current &&
		def.Owner != b.gs.Current &&
		from.IsAdjacent(to)
}

// Attack resolves combat between the units on from and to with a single
// draw. The loser dies and the survivor's owner earns one gold. A winning
// attacker then moves in when its budget allows. The losing side is checked
// for stalemate.
func (b *Board) Attack(from, to *core.Tile) bool {
	if b.gs.HasWinner || !b.CanAttack(from, to) {
		b.logger.Debug().
			Stringer("from", tileCoord(from)).
			Stringer("to", tileCoord(to)).
			Msg("Attack rejected")
		return false
	}

	att, def := from.Unit(), to.Unit()
	odds := att.Odds(def)
	roll := b.rng.Float64()
	won := roll < odds

	b.logger.Info().
		Stringer("attacker", att).
		Stringer("defender", def).
		Float64("odds", odds).
		Float64("roll", roll).
		Bool("attacker_won", won).
		Msg("Combat resolved")
	b.eventBus.Publish(events.NewCombatResolvedEvent(b.gameID, b.gs.Turn, att, def, from.Coord, to.Coord, odds, roll, won))

	if won {
		to.KillUnit()
		b.MoveUnit(from, to)
		b.production.Reward(&b.purse, att.Owner, b.gs.Current, b.gs.Turn)
		b.checkStalemate(def.Owner)
	} else {
		from.KillUnit()
		b.gs.Selected = nil
		b.production.Reward(&b.purse, def.Owner, b.gs.Current, b.gs.Turn)
		b.checkStalemate(att.Owner)
	}
	return true
}

// NextTurn passes control to the other player. It only takes effect once the
// current player has spent movement points this turn.
func (b *Board) NextTurn() bool {
	if b.gs.HasWinner || b.gs.MovementPoints >= b.fullMovementPoints {
		b.logger.Debug().
			Int("movement_points", b.gs.MovementPoints).
			Msg("Turn cannot end yet")
		return false
	}
	b.turnProcessor.EndTurn()
	return true
}

// OnClick handles a click at the given pixel. It reports whether the click
// landed on a tile.
func (b *Board) OnClick(px, py int) bool {
	t := b.TileAt(px, py)
	if t == nil {
		return false
	}
	b.ClickTile(t)
	return true
}

// ClickTile applies a click on t: place the pending spawn; otherwise, with a
// tile selected, deselect it, move to or attack a neighbour; otherwise select
// t when its unit can move. It reports whether anything changed.
func (b *Board) ClickTile(t *core.Tile) bool {
	if b.gs.HasWinner || t == nil {
		return false
	}
	if b.gs.SpawnPending {
		return b.SpawnUnit(t)
	}
	if sel := b.gs.Selected; sel != nil {
		switch {
		case t == sel:
			b.gs.Selected = nil
			return true
		case sel.IsAdjacent(t):
			return b.MoveUnit(sel, t) || b.Attack(sel, t)
		default:
			return false
		}
	}
	if b.CanMove(t.Unit()) {
		b.gs.Selected = t
		return true
	}
	return false
}

// Deselect clears the tile selection and any pending spawn.
func (b *Board) Deselect() {
	b.gs.Selected = nil
	b.gs.clearPending()
}

func (b *Board) checkStalemate(p core.Player) {
	if b.winCondition.IsStalemated(b.grid, &b.purse, p) {
		b.declareWinner(p.Other(), events.EndReasonStalemate)
	}
}

func tileCoord(t *core.Tile) core.Coordinate {
	if t == nil {
		return core.Coordinate{X: -1, Y: -1}
	}
	return t.Coord
}
