package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	UITerminal = "terminal"
	UIHeadless = "headless"
)

type Config struct {
	LogLevel    string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile     string   `yaml:"log-file" env:"LOG_FILE" env-default:""`
	UI          string   `yaml:"ui" env:"UI" env-default:"terminal"`
	StateBuffer int      `yaml:"state-buffer" env:"STATE_BUFFER" env-default:"64"`
	Headless    Headless `yaml:"headless"`
}

type Headless struct {
	Events string `yaml:"events" env:"HEADLESS_EVENTS" env-default:""`
}

// MustLoad - loads .env if present, then the yaml file at path, falling back to
// environment variables when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}
