package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/events"
	"github.com/mitchelldurbincs/groundwar/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())

	// No filter: interested in everything
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeTurnEnded))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	marine := core.NewUnit(core.Marines, core.Red)
	tank := core.NewUnit(core.Tank, core.Blue)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("test-game-1", 13, 10, 10, 12),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(13), logLine["map_width"])
				assert.Equal(t, float64(10), logLine["map_height"])
				assert.Equal(t, float64(10), logLine["start_money"])
				assert.Equal(t, float64(12), logLine["movement_points"])
			},
		},
		{
			name:  "TurnEndedEvent",
			event: events.NewTurnEndedEvent("test-game-1", core.Red, 5, 2, 1),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Red", logLine["player"])
				assert.Equal(t, "Blue", logLine["next"])
				assert.Equal(t, float64(5), logLine["turn"])
				assert.Equal(t, float64(2), logLine["points_unspent"])
				assert.Equal(t, float64(1), logLine["gold_collected"])
			},
		},
		{
			name:  "UnitSpawnedEvent",
			event: events.NewUnitSpawnedEvent("test-game-1", 1, marine, core.NewCoordinate(0, 7)),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Red", logLine["owner"])
				assert.Equal(t, "Marines", logLine["unit"])
				assert.Equal(t, float64(0), logLine["x"])
				assert.Equal(t, float64(7), logLine["y"])
				assert.Equal(t, float64(1), logLine["cost"])
			},
		},
		{
			name:  "UnitMovedEvent",
			event: events.NewUnitMovedEvent("test-game-1", 1, marine, core.NewCoordinate(0, 7), core.NewCoordinate(1, 7)),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(0), logLine["from_x"])
				assert.Equal(t, float64(1), logLine["to_x"])
				assert.Equal(t, float64(6), logLine["cost"])
				assert.Equal(t, false, logLine["carrying_flag"])
			},
		},
		{
			name:  "CombatResolvedEvent",
			event: events.NewCombatResolvedEvent("test-game-1", 3, marine, tank, core.NewCoordinate(4, 4), core.NewCoordinate(5, 4), 2.0/6.0, 0.9, false),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Red", logLine["attacker"])
				assert.Equal(t, "Marines", logLine["attacker_unit"])
				assert.Equal(t, "Tank", logLine["defender_unit"])
				assert.Equal(t, float64(5), logLine["location_x"])
				assert.Equal(t, 0.9, logLine["roll"])
				assert.Equal(t, false, logLine["attacker_won"])
			},
		},
		{
			name:  "GoldCollectedEvent",
			event: events.NewGoldCollectedEvent("test-game-1", core.Red, 3, core.Blue, 1, events.GoldSourceCombat, 8),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Blue", logLine["owner"])
				assert.Equal(t, float64(1), logLine["amount"])
				assert.Equal(t, "combat", logLine["source"])
				assert.Equal(t, float64(8), logLine["balance"])
			},
		},
		{
			name:  "GameEndedEvent",
			event: events.NewGameEndedEvent("test-game-1", core.Blue, 9, core.Blue, events.EndReasonStalemate),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Blue", logLine["winner"])
				assert.Equal(t, "stalemate", logLine["reason"])
				assert.Equal(t, float64(9), logLine["final_turn"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered-logger", zerolog.Nop(), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGameEnded})

	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeTurnEnded))
	assert.False(t, logSub.InterestedIn(events.TypeUnitMoved))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeUnitMoved))
}

func TestLoggerSubscriberThroughBus(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameEnded})

	bus := events.NewEventBus(zerolog.Nop())
	bus.Subscribe(logSub)

	bus.Publish(events.NewTurnEndedEvent("g", core.Red, 1, 0, 0))
	assert.Empty(t, buf.String(), "filtered events are not delivered")

	bus.Publish(events.NewGameEndedEvent("g", core.Red, 1, core.Red, events.EndReasonFlagCaptured))
	assert.Contains(t, buf.String(), "flag_captured")
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tc.logLevel)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewGameStartedEvent("game1", 13, 10, 10, 12))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	u := core.NewUnit(core.Marines, core.Blue)
	logSub.HandleEvent(events.NewUnitMovedEvent("dev-game", 2, u, core.NewCoordinate(9, 0), core.NewCoordinate(8, 0)))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be an object")
	assert.Equal(t, "unit.moved", eventData["type"])
	assert.Equal(t, "dev-game", eventData["game_id"])
	assert.Contains(t, eventData, "carrying_flag")
}

func TestLoggerSubscriberThroughput(t *testing.T) {
	logger := zerolog.New(&bytes.Buffer{}).Level(zerolog.Disabled)
	logSub := subscribers.NewLoggerSubscriber("bench-logger", logger, zerolog.InfoLevel)

	start := time.Now()
	numEvents := 10000
	for i := 0; i < numEvents; i++ {
		logSub.HandleEvent(events.NewTurnEndedEvent("bench-game", core.Players[i%2], i, 0, 0))
	}
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 5*time.Second, "handling %d events took %s", numEvents, elapsed)
}
