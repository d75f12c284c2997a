package game

import (
	"math/rand"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/processor"
	"github.com/mitchelldurbincs/groundwar/internal/game/rules"
)

// RandomCommands picks one legal action for the current player at random and
// returns the command script that performs it, preceded by whatever clears a
// leftover selection or pending spawn. It plays both sides for demos and
// smoke tests. It returns nil when the current player has nothing to do.
//
// Attacks and spawns are favoured over plain moves so matches end. When kinds
// is non-empty only those unit kinds are bought.
func RandomCommands(b *Board, rng *rand.Rand, kinds ...core.UnitKind) []processor.Command {
	if b.GameOver() {
		return nil
	}

	var script []processor.Command
	if sel := b.SelectedTile(); sel != nil {
		script = append(script, processor.ClickTile(sel.Coord))
	}
	if kind, ok := b.PendingSpawn(); ok {
		script = append(script, processor.SpawnCommand{Kind: kind})
	}

	// Attacking by click needs the attacker selected first, which takes budget.
	var attacks []rules.Step
	for _, s := range b.LegalAttacks() {
		if b.CanMove(s.From.Unit()) {
			attacks = append(attacks, s)
		}
	}
	moves := b.LegalMoves()
	var spawns []spawnOption
	if len(kinds) == 0 {
		kinds = core.UnitKinds[:]
	}
	for _, kind := range kinds {
		for _, t := range b.SpawnTargets(kind) {
			spawns = append(spawns, spawnOption{kind: kind, at: t})
		}
	}
	canEnd := b.MovementPoints() < b.FullMovementPoints()

	type choice struct {
		weight int
		pick   func() []processor.Command
	}
	var choices []choice
	if len(attacks) > 0 {
		choices = append(choices, choice{4, func() []processor.Command {
			return stepScript(attacks[rng.Intn(len(attacks))])
		}})
	}
	if len(spawns) > 0 {
		choices = append(choices, choice{2, func() []processor.Command {
			s := spawns[rng.Intn(len(spawns))]
			return []processor.Command{processor.SpawnCommand{Kind: s.kind}, processor.ClickTile(s.at.Coord)}
		}})
	}
	if len(moves) > 0 {
		choices = append(choices, choice{3, func() []processor.Command {
			return stepScript(moves[rng.Intn(len(moves))])
		}})
	}
	if canEnd {
		choices = append(choices, choice{1, func() []processor.Command {
			return []processor.Command{processor.EndTurnCommand{}}
		}})
	}
	if len(choices) == 0 {
		return nil
	}

	total := 0
	for _, c := range choices {
		total += c.weight
	}
	n := rng.Intn(total)
	for _, c := range choices {
		if n < c.weight {
			return append(script, c.pick()...)
		}
		n -= c.weight
	}
	return nil
}

type spawnOption struct {
	kind core.UnitKind
	at   *core.Tile
}

func stepScript(s rules.Step) []processor.Command {
	return []processor.Command{processor.ClickTile(s.From.Coord), processor.ClickTile(s.To.Coord)}
}
