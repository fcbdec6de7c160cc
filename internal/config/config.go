package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Match   MatchConfig   `mapstructure:"match"`
	Sim     SimConfig     `mapstructure:"sim"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GameConfig holds game mechanics configuration
type GameConfig struct {
	Board   BoardConfig   `mapstructure:"board"`
	Players PlayersConfig `mapstructure:"players"`
}

// BoardConfig holds board generation settings
type BoardConfig struct {
	Rows    int `mapstructure:"rows"`
	Columns int `mapstructure:"columns"`
	Victims int `mapstructure:"victims"`
	MaxDice int `mapstructure:"max_dice"`
}

// PlayersConfig holds player roster settings. Names and Strategies are
// padded with generated defaults when shorter than Count.
type PlayersConfig struct {
	Count      int      `mapstructure:"count"`
	Names      []string `mapstructure:"names"`
	Strategies []string `mapstructure:"strategies"`
}

// MatchConfig holds per-match settings
type MatchConfig struct {
	MaxTurns int   `mapstructure:"max_turns"`
	Seed     int64 `mapstructure:"seed"`
}

// SimConfig holds simulation loop settings
type SimConfig struct {
	Matches int  `mapstructure:"matches"`
	Render  bool `mapstructure:"render"`
	DelayMs int  `mapstructure:"delay_ms"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Board defaults
	v.SetDefault("game.board.rows", 8)
	v.SetDefault("game.board.columns", 8)
	v.SetDefault("game.board.victims", 8)
	v.SetDefault("game.board.max_dice", 8)

	// Player defaults
	v.SetDefault("game.players.count", 4)
	v.SetDefault("game.players.names", []string{})
	v.SetDefault("game.players.strategies", []string{})

	// Match defaults. Seed 0 means derive one from the clock.
	v.SetDefault("match.max_turns", 500)
	v.SetDefault("match.seed", 0)

	// Simulation defaults
	v.SetDefault("sim.matches", 1)
	v.SetDefault("sim.render", true)
	v.SetDefault("sim.delay_ms", 0)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/dicewars")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("DICEWARS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig loads environment-specific config overlay
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	// Re-unmarshal with merged config
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return nil
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Board.Rows <= 0 || c.Game.Board.Columns <= 0 {
		return fmt.Errorf("game.board dimensions must be positive")
	}
	if c.Game.Board.Victims < 0 {
		return fmt.Errorf("game.board.victims must be non-negative")
	}
	if c.Game.Board.Victims >= c.Game.Board.Rows*c.Game.Board.Columns {
		return fmt.Errorf("game.board.victims must leave at least one playable territory")
	}
	// Dice distribution hands every owned territory one die and needs
	// headroom above that to place the rest of the budget
	if c.Game.Board.MaxDice < 3 {
		return fmt.Errorf("game.board.max_dice must be at least 3")
	}
	if c.Game.Players.Count < 1 {
		return fmt.Errorf("game.players.count must be at least 1")
	}
	if c.Match.MaxTurns <= 0 {
		return fmt.Errorf("match.max_turns must be positive")
	}
	if c.Sim.Matches <= 0 {
		return fmt.Errorf("sim.matches must be positive")
	}
	if c.Sim.DelayMs < 0 {
		return fmt.Errorf("sim.delay_ms must be non-negative")
	}
	return nil
}
