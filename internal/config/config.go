package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ColorWhite = "white"
	ColorBlack = "black"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFile    string  `yaml:"log-file" env:"OTHELLO_LOG_FILE"`
	FirstColor string  `yaml:"first-color" env:"OTHELLO_FIRST_COLOR" env-default:"white" validate:"oneof=white black"`
	Players    Players `yaml:"players"`
	Console    Console `yaml:"console"`
}

type Players struct {
	White Player `yaml:"white" env-prefix:"OTHELLO_WHITE_"`
	Black Player `yaml:"black" env-prefix:"OTHELLO_BLACK_"`
}

type Player struct {
	Name string `yaml:"name" env:"NAME" validate:"required,max=32"`
}

type Console struct {
	NoColor     bool   `yaml:"no-color"`
	HistoryFile string `yaml:"history-file" env:"OTHELLO_HISTORY_FILE"`
}

// MustLoad - loads config.yml at path, falling back to the environment when the file does not exist.
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
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	config.Players.setDefaults()

	if err = validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if config.Players.White.Name == config.Players.Black.Name {
		return nil, fmt.Errorf("invalid config: both players are named %q", config.Players.White.Name)
	}

	return config, nil
}

func (that *Players) setDefaults() {
	if that.White.Name == "" {
		that.White.Name = "Player 1"
	}

	if that.Black.Name == "" {
		that.Black.Name = "Player 2"
	}
}
