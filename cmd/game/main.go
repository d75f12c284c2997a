package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/groundwar/internal/common"
	"github.com/mitchelldurbincs/groundwar/internal/config"
	"github.com/mitchelldurbincs/groundwar/internal/game"
	"github.com/mitchelldurbincs/groundwar/internal/game/core"
	"github.com/mitchelldurbincs/groundwar/internal/game/events"
	"github.com/mitchelldurbincs/groundwar/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/groundwar/internal/game/processor"
)

// Headless self-play: both sides pick random legal actions until someone
// wins or the command limit runs out.
func main() {
	configPath := flag.String("config", "", "Path to config file")
	var overrides config.Overrides
	flag.Var(&overrides, "set", "Override a config key, key=value (repeatable)")
	maxCommands := flag.Int("max-commands", -1, "Command limit (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 to use config default)")
	spawn := flag.String("spawn", "", "Comma-separated unit kinds the players may buy (empty for all)")
	flag.Parse()

	if err := common.LoadDotEnv(".env"); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(common.Environment()); err != nil {
		log.Fatal().Err(err).Msg("Failed to load environment config")
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		log.Fatal().Err(err).Msg("Invalid -set override")
	}
	cfg := config.Get()

	kinds, err := parseUnitKinds(*spawn)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid -spawn")
	}
	if *maxCommands == -1 {
		*maxCommands = cfg.Demo.MaxCommands
	}
	if *seed == 0 {
		*seed = cfg.Game.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	logger := common.SetupLogging(cfg.Logging.Level, cfg.Logging.Format)

	bus := events.NewEventBus(logger)
	eventLogger := subscribers.NewLoggerSubscriber("demo_logger", logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(cfg.Events.DevMode)
	eventLogger.SetEventFilter(cfg.Events.Filter)
	bus.Subscribe(eventLogger)

	rng := rand.New(rand.NewSource(*seed))
	gcfg := game.GameConfigFromSettings(cfg, logger)
	gcfg.Rng = rng
	gcfg.EventBus = bus

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board, err := game.NewBoard(ctx, gcfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create board")
	}

	log.Info().
		Str("game_id", board.GameID()).
		Int64("seed", *seed).
		Int("max_commands", *maxCommands).
		Msg("Starting self-play")

	applied, err := selfPlay(ctx, board, processor.NewCommandProcessor(logger), rng, *maxCommands, kinds)
	switch {
	case errors.Is(err, context.Canceled):
		log.Warn().Msg("Interrupted")
	case err != nil:
		log.Error().Err(err).Msg("Self-play stopped on a rejected command")
	}

	fmt.Println(board.Render())
	for _, p := range []core.Player{core.Red, core.Blue} {
		s := board.Stats(p)
		fmt.Printf("%-4s gold=%d units=%d flags=%d gold_tiles=%d\n", p, s.Gold, s.Units, s.FlagsCarried, s.GoldTiles)
	}
	if winner, ok := board.Winner(); ok {
		log.Info().Stringer("winner", winner).Int("turn", board.Turn()).Int("commands", applied).Msg("Match finished")
	} else {
		log.Info().Int("turn", board.Turn()).Int("commands", applied).Msg("Command limit reached without a winner")
	}
}

func selfPlay(ctx context.Context, b *game.Board, cp *processor.CommandProcessor, rng *rand.Rand, limit int, kinds []core.UnitKind) (int, error) {
	applied := 0
	for applied < limit && !b.GameOver() {
		script := game.RandomCommands(b, rng, kinds...)
		if len(script) == 0 {
			log.Warn().Stringer("player", b.CurrentPlayer()).Msg("No legal action available")
			return applied, nil
		}
		n, err := cp.ProcessScript(ctx, b, script)
		applied += n
		if err != nil {
			return applied, err
		}
	}
	return applied, nil
}

func parseUnitKinds(list string) ([]core.UnitKind, error) {
	var kinds []core.UnitKind
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		k, err := core.ParseUnitKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
