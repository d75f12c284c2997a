package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// GW_GAME_START_MONEY for game.start_money.
const EnvPrefix = "GW"

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Board   BoardConfig   `mapstructure:"board"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
	Events  EventsConfig  `mapstructure:"events"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	StartMoney     int   `mapstructure:"start_money"`
	MovementPoints int   `mapstructure:"movement_points"`
	Seed           int64 `mapstructure:"seed"` // 0 seeds from the clock
}

// BoardConfig holds the pixel geometry of the board
type BoardConfig struct {
	TileRadius int `mapstructure:"tile_radius"`
	OriginX    int `mapstructure:"origin_x"`
	OriginY    int `mapstructure:"origin_y"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// EventsConfig holds event bus settings
type EventsConfig struct {
	DevMode bool     `mapstructure:"dev_mode"`
	Filter  []string `mapstructure:"filter"` // event types to log; empty logs all
}

// DemoConfig holds headless demo settings
type DemoConfig struct {
	MaxCommands int `mapstructure:"max_commands"`
}

var (
	// Global config instance, swapped whole on reload
	cfg atomic.Pointer[Config]
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.start_money", 10)
	v.SetDefault("game.movement_points", 12)
	v.SetDefault("game.seed", 0)

	v.SetDefault("board.tile_radius", 40)
	v.SetDefault("board.origin_x", 175)
	v.SetDefault("board.origin_y", 0)

	v.SetDefault("ui.window.width", 1200)
	v.SetDefault("ui.window.height", 700)
	v.SetDefault("ui.window.title", "Ground War")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("events.dev_mode", false)
	v.SetDefault("events.filter", []string{})

	v.SetDefault("demo.max_commands", 500)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/groundwar")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case configPath != "" && errors.Is(err, fs.ErrNotExist):
			// Specific file requested but missing: run on defaults
		case configPath == "" && errors.As(err, &notFound):
		default:
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	next, err := decode(v)
	if err != nil {
		return err
	}
	cfg.Store(next)
	return nil
}

// decode unmarshals and validates a fresh Config from the viper state.
func decode(src *viper.Viper) (*Config, error) {
	next := &Config{}
	if err := src.Unmarshal(next); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(next); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return next, nil
}

// Get returns the current config. The returned value is never modified;
// reloads replace it.
func Get() *Config {
	if c := cfg.Load(); c != nil {
		return c
	}
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	return cfg.Load()
}

// LoadEnvironmentConfig merges config.<env>.yaml from the directory of the
// loaded config file (or the working directory) over the current values. A
// missing overlay is not an error.
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	dir := "."
	if used := v.ConfigFileUsed(); used != "" {
		dir = filepath.Dir(used)
	}
	envFile := filepath.Join(dir, fmt.Sprintf("config.%s.yaml", env))
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	next, err := decode(v)
	if err != nil {
		return fmt.Errorf("environment config %s: %w", envFile, err)
	}
	cfg.Store(next)
	return nil
}

// Set overrides key for the rest of the process. The previous value is
// restored if the result does not validate.
func Set(key string, value interface{}) error {
	prev, had := v.Get(key), v.IsSet(key)
	v.Set(key, value)
	next, err := decode(v)
	if err != nil {
		if had {
			v.Set(key, prev)
		} else {
			v.Set(key, nil)
		}
		return fmt.Errorf("set %s: %w", key, err)
	}
	cfg.Store(next)
	return nil
}

// ApplyOverrides applies "key=value" pairs in order through Set.
func ApplyOverrides(pairs []string) error {
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("override %q: want key=value", pair)
		}
		if err := Set(key, strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	return nil
}

// Overrides collects repeated -set flags.
type Overrides []string

func (o *Overrides) String() string { return strings.Join(*o, ",") }

// Set implements flag.Value.
func (o *Overrides) Set(pair string) error {
	*o = append(*o, pair)
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file. Reloads that fail
// validation are reported through onChange and leave the previous values in
// place.
func WatchConfig(onChange func(error)) {
	watched := v
	watched.OnConfigChange(func(e fsnotify.Event) {
		next, err := decode(watched)
		if err == nil {
			cfg.Store(next)
		}
		if onChange != nil {
			onChange(err)
		}
	})
	watched.WatchConfig()
}

var validLogFormats = map[string]bool{"console": true, "json": true}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.StartMoney < 0 {
		return fmt.Errorf("game.start_money must be non-negative")
	}
	if c.Game.MovementPoints <= 0 {
		return fmt.Errorf("game.movement_points must be positive")
	}

	if c.Board.TileRadius <= 0 {
		return fmt.Errorf("board.tile_radius must be positive")
	}
	if c.Board.OriginX < 0 || c.Board.OriginY < 0 {
		return fmt.Errorf("board origin must be non-negative")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}

	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	if c.Demo.MaxCommands <= 0 {
		return fmt.Errorf("demo.max_commands must be positive")
	}

	return nil
}
