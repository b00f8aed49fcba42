package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogPath  string  `yaml:"log-path" env:"TTT_LOG_PATH"`
	Game     Game    `yaml:"game"`
	Console  Console `yaml:"console"`
}

// Game tunes the computer opponent. Zero values in the file fall back to env-default,
// so switches are expressed as opt-outs.
type Game struct {
	FixedOpening bool          `yaml:"fixed-opening" env:"TTT_FIXED_OPENING"`
	Seed         uint64        `yaml:"seed" env:"TTT_SEED"`
	ThinkDelay   time.Duration `yaml:"think-delay" env:"TTT_THINK_DELAY" env-default:"1s" validate:"gte=0"`
	ComputerName string        `yaml:"computer-name" env:"TTT_COMPUTER_NAME" validate:"max=32"`
}

type Console struct {
	NoColor bool `yaml:"no-color" env:"TTT_NO_COLOR"`
	NoClear bool `yaml:"no-clear" env:"TTT_NO_CLEAR"`
}

// MustLoad - load configuration from the yaml file at path, or from the environment alone when
// the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
