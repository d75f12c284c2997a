package events

import (
	"github.com/mitchelldurbincs/groundwar/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted    = "game.started"
	TypeGameEnded      = "game.ended"
	TypeTurnEnded      = "turn.ended"
	TypeUnitSpawned    = "unit.spawned"
	TypeUnitMoved      = "unit.moved"
	TypeCombatResolved = "combat.resolved"
	TypeGoldCollected  = "gold.collected"
)

// Reasons a match can end.
const (
	EndReasonFlagCaptured = "flag_captured"
	EndReasonStalemate    = "stalemate"
)

// Sources of gold income.
const (
	GoldSourceMine   = "gold_tile"
	GoldSourceCombat = "combat"
)

// GameStartedEvent is published once the board is loaded
type GameStartedEvent struct {
	BaseEvent
	Metadata       EventMetadata `json:"metadata"`
	MapWidth       int           `json:"map_width"`
	MapHeight      int           `json:"map_height"`
	StartMoney     int           `json:"start_money"`
	MovementPoints int           `json:"movement_points"`
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, width, height, startMoney, movementPoints int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent:      newBaseEvent(TypeGameStarted, gameID),
		Metadata:       EventMetadata{Player: core.Red.String(), Turn: 1},
		MapWidth:       width,
		MapHeight:      height,
		StartMoney:     startMoney,
		MovementPoints: movementPoints,
	}
}

// GameEndedEvent is published when a player wins
type GameEndedEvent struct {
	BaseEvent
	Metadata  EventMetadata `json:"metadata"`
	Winner    core.Player   `json:"winner"`
	Reason    string        `json:"reason"`
	FinalTurn int           `json:"final_turn"`
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, mover core.Player, turn int, winner core.Player, reason string) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: newBaseEvent(TypeGameEnded, gameID),
		Metadata:  EventMetadata{Player: mover.String(), Turn: turn},
		Winner:    winner,
		Reason:    reason,
		FinalTurn: turn,
	}
}

// TurnEndedEvent is published when control passes to the other player
type TurnEndedEvent struct {
	BaseEvent
	Metadata      EventMetadata `json:"metadata"`
	Next          core.Player   `json:"next"`
	PointsUnspent int           `json:"points_unspent"`
	GoldCollected int           `json:"gold_collected"`
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, ended core.Player, turn int, unspent, collected int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:     newBaseEvent(TypeTurnEnded, gameID),
		Metadata:      EventMetadata{Player: ended.String(), Turn: turn},
		Next:          ended.Other(),
		PointsUnspent: unspent,
		GoldCollected: collected,
	}
}

// UnitSpawnedEvent is published when a player buys a unit
type UnitSpawnedEvent struct {
	BaseEvent
	Metadata EventMetadata   `json:"metadata"`
	Owner    core.Player     `json:"owner"`
	Kind     core.UnitKind   `json:"kind"`
	At       core.Coordinate `json:"at"`
	Cost     int             `json:"cost"`
}

// NewUnitSpawnedEvent creates a new UnitSpawnedEvent
func NewUnitSpawnedEvent(gameID string, turn int, u *core.Unit, at core.Coordinate) *UnitSpawnedEvent {
	return &UnitSpawnedEvent{
		BaseEvent: newBaseEvent(TypeUnitSpawned, gameID),
		Metadata:  EventMetadata{Player: u.Owner.String(), Turn: turn},
		Owner:     u.Owner,
		Kind:      u.Kind,
		At:        at,
		Cost:      u.GoldCost(),
	}
}

// UnitMovedEvent is published after a unit steps onto a neighbouring tile
type UnitMovedEvent struct {
	BaseEvent
	Metadata     EventMetadata   `json:"metadata"`
	Owner        core.Player     `json:"owner"`
	Kind         core.UnitKind   `json:"kind"`
	From         core.Coordinate `json:"from"`
	To           core.Coordinate `json:"to"`
	Cost         int             `json:"cost"`
	CarryingFlag bool            `json:"carrying_flag"`
}

// NewUnitMovedEvent creates a new UnitMovedEvent
func NewUnitMovedEvent(gameID string, turn int, u *core.Unit, from, to core.Coordinate) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent:    newBaseEvent(TypeUnitMoved, gameID),
		Metadata:     EventMetadata{Player: u.Owner.String(), Turn: turn},
		Owner:        u.Owner,
		Kind:         u.Kind,
		From:         from,
		To:           to,
		Cost:         u.MovementCost(),
		CarryingFlag: u.Flag() != nil,
	}
}

// CombatResolvedEvent is published after an attack has been rolled
type CombatResolvedEvent struct {
	BaseEvent
	Metadata     EventMetadata   `json:"metadata"`
	Attacker     core.Player     `json:"attacker"`
	AttackerKind core.UnitKind   `json:"attacker_kind"`
	DefenderKind core.UnitKind   `json:"defender_kind"`
	From         core.Coordinate `json:"from"`
	To           core.Coordinate `json:"to"`
	Odds         float64         `json:"odds"`
	Roll         float64         `json:"roll"`
	AttackerWon  bool            `json:"attacker_won"`
}

// NewCombatResolvedEvent creates a new CombatResolvedEvent
func NewCombatResolvedEvent(gameID string, turn int, attacker, defender *core.Unit, from, to core.Coordinate, odds, roll float64, attackerWon bool) *CombatResolvedEvent {
	return &CombatResolvedEvent{
		BaseEvent:    newBaseEvent(TypeCombatResolved, gameID),
		Metadata:     EventMetadata{Player: attacker.Owner.String(), Turn: turn},
		Attacker:     attacker.Owner,
		AttackerKind: attacker.Kind,
		DefenderKind: defender.Kind,
		From:         from,
		To:           to,
		Odds:         odds,
		Roll:         roll,
		AttackerWon:  attackerWon,
	}
}

// Winner returns the owner of the surviving unit.
func (e *CombatResolvedEvent) Winner() core.Player {
	if e.AttackerWon {
		return e.Attacker
	}
	return e.Attacker.Other()
}

// Summary is a one-line description of the battle for display.
func (e *CombatResolvedEvent) Summary() string {
	att := core.NewUnit(e.AttackerKind, e.Attacker)
	def := core.NewUnit(e.DefenderKind, e.Attacker.Other())
	if e.AttackerWon {
		return att.String() + " defeated " + def.String() + " at " + e.To.String()
	}
	return def.String() + " held " + e.To.String() + " against " + att.String()
}

// GoldCollectedEvent is published whenever a player earns gold
type GoldCollectedEvent struct {
	BaseEvent
	Metadata EventMetadata `json:"metadata"`
	Owner    core.Player   `json:"owner"`
	Amount   int           `json:"amount"`
	Source   string        `json:"source"`
	Balance  int           `json:"balance"`
}

// NewGoldCollectedEvent creates a new GoldCollectedEvent
func NewGoldCollectedEvent(gameID string, mover core.Player, turn int, owner core.Player, amount int, source string, balance int) *GoldCollectedEvent {
	return &GoldCollectedEvent{
		BaseEvent: newBaseEvent(TypeGoldCollected, gameID),
		Metadata:  EventMetadata{Player: mover.String(), Turn: turn},
		Owner:     owner,
		Amount:    amount,
		Source:    source,
		Balance:   balance,
	}
}
