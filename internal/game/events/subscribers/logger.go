package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/groundwar/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("map_width", e.MapWidth).
			Int("map_height", e.MapHeight).
			Int("start_money", e.StartMoney).
			Int("movement_points", e.MovementPoints)

	case *events.GameEndedEvent:
		logEvent.
			Stringer("winner", e.Winner).
			Str("reason", e.Reason).
			Int("final_turn", e.FinalTurn)

	case *events.TurnEndedEvent:
		logEvent.
			Str("player", e.Metadata.Player).
			Int("turn", e.Metadata.Turn).
			Stringer("next", e.Next).
			Int("points_unspent", e.PointsUnspent).
			Int("gold_collected", e.GoldCollected)

	case *events.UnitSpawnedEvent:
		logEvent.
			Stringer("owner", e.Owner).
			Stringer("unit", e.Kind).
			Int("x", e.At.X).
			Int("y", e.At.Y).
			Int("cost", e.Cost)

	case *events.UnitMovedEvent:
		logEvent.
			Stringer("owner", e.Owner).
			Stringer("unit", e.Kind).
			Int("from_x", e.From.X).
			Int("from_y", e.From.Y).
			Int("to_x", e.To.X).
			Int("to_y", e.To.Y).
			Int("cost", e.Cost).
			Bool("carrying_flag", e.CarryingFlag)

	case *events.CombatResolvedEvent:
		logEvent.
			Stringer("attacker", e.Attacker).
			Stringer("attacker_unit", e.AttackerKind).
			Stringer("defender_unit", e.DefenderKind).
			Int("location_x", e.To.X).
			Int("location_y", e.To.Y).
			Float64("odds", e.Odds).
			Float64("roll", e.Roll).
			Bool("attacker_won", e.AttackerWon)

	case *events.GoldCollectedEvent:
		logEvent.
			Stringer("owner", e.Owner).
			Int("amount", e.Amount).
			Str("source", e.Source).
			Int("balance", e.Balance)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
