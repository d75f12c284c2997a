package main

import (
	"context"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/groundwar/internal/common"
	"github.com/mitchelldurbincs/groundwar/internal/config"
	"github.com/mitchelldurbincs/groundwar/internal/game"
	"github.com/mitchelldurbincs/groundwar/internal/game/events"
	"github.com/mitchelldurbincs/groundwar/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/groundwar/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	var overrides config.Overrides
	flag.Var(&overrides, "set", "Override a config key, key=value (repeatable)")
	watch := flag.Bool("watch-config", true, "Reload the log level when the config file changes")
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

	logger := common.SetupLogging(cfg.Logging.Level, cfg.Logging.Format)

	bus := events.NewEventBus(logger)
	eventLogger := subscribers.NewLoggerSubscriber("ui_logger", logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(cfg.Events.DevMode)
	eventLogger.SetEventFilter(cfg.Events.Filter)
	bus.Subscribe(eventLogger)

	gcfg := game.GameConfigFromSettings(cfg, logger)
	gcfg.EventBus = bus
	board, err := game.NewBoard(context.Background(), gcfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create board")
	}

	if *watch && config.ConfigFilePath() != "" {
		config.WatchConfig(func(err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid config change")
				return
			}
			level := common.ParseLevel(config.Get().Logging.Level)
			zerolog.SetGlobalLevel(level)
			log.Info().Stringer("level", level).Msg("Config reloaded")
		})
	}

	uiGame, err := ui.NewUIGame(board)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create UI")
	}

	log.Info().Str("game_id", board.GameID()).Msg("Starting hot-seat client")

	ebiten.SetWindowSize(ui.ScreenWidth(), ui.ScreenHeight())
	ebiten.SetWindowTitle(ui.WindowTitle())

	if err := ebiten.RunGame(uiGame); err != nil {
		log.Fatal().Err(err).Msg("UI exited with error")
	}
}
