package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/airhockey/internal/airhockey"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string    `yaml:"log-file" env:"LOG_FILE" env-default:"airhockey.log"`
	Seed      uint64    `yaml:"seed" env:"SEED" env-default:"0"`
	Game      Game      `yaml:"game"`
	Spectator Spectator `yaml:"spectator"`
	Redis     Redis     `yaml:"redis"`
}

// Game holds no env defaults: zero and false are meaningful here, so defaults come from defaultConfig.
type Game struct {
	TableWidth       int           `yaml:"table-width" env:"TABLE_WIDTH"`
	PlayerCount      int           `yaml:"player-count" env:"PLAYER_COUNT"`
	ConstantSpeed    bool          `yaml:"constant-speed" env:"CONSTANT_SPEED"`
	MinSpeed         time.Duration `yaml:"min-speed" env:"MIN_SPEED"`
	MaxSpeed         time.Duration `yaml:"max-speed" env:"MAX_SPEED"`
	SpeedIncrement   time.Duration `yaml:"speed-increment" env:"SPEED_INCREMENT"`
	SkillLevel       int           `yaml:"skill-level" env:"SKILL_LEVEL"`
	GameCount        int           `yaml:"game-count" env:"GAME_COUNT"`
	InteractiveSetup bool          `yaml:"interactive-setup" env:"INTERACTIVE_SETUP"`
	Sound            bool          `yaml:"sound" env:"SOUND"`
}

type Spectator struct {
	Enabled bool   `yaml:"enabled" env:"SPECTATOR_ENABLED" env-default:"false"`
	Port    string `yaml:"port" env:"SPECTATOR_PORT" env-default:"9090"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the YAML file at path over the defaults, then applies env overrides.
func Load(path string) (*Config, error) {
	config := defaultConfig()

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// LoadEnv - builds the config from env vars and defaults only, for runs without a config file.
func LoadEnv() (*Config, error) {
	config := defaultConfig()

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from env: %w", err)
	}

	return config, nil
}

// defaultConfig - returns the game defaults; the remaining sections are defaulted through env-default tags.
func defaultConfig() *Config {
	settings := airhockey.DefaultSettings()

	return &Config{
		Game: Game{
			TableWidth:       settings.TableWidth,
			PlayerCount:      settings.PlayerCount,
			ConstantSpeed:    settings.ConstantSpeed,
			MinSpeed:         settings.MinSpeed,
			MaxSpeed:         settings.MaxSpeed,
			SpeedIncrement:   settings.SpeedIncrement,
			SkillLevel:       settings.SkillLevel,
			GameCount:        settings.GameCount,
			InteractiveSetup: true,
			Sound:            true,
		},
	}
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GameSettings - returns the session settings; the game validates them.
func (that *Config) GameSettings() airhockey.Settings {
	return airhockey.Settings{
		TableWidth:     that.Game.TableWidth,
		PlayerCount:    that.Game.PlayerCount,
		ConstantSpeed:  that.Game.ConstantSpeed,
		MinSpeed:       that.Game.MinSpeed,
		MaxSpeed:       that.Game.MaxSpeed,
		SpeedIncrement: that.Game.SpeedIncrement,
		SkillLevel:     that.Game.SkillLevel,
		GameCount:      that.Game.GameCount,
	}
}
