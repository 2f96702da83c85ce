package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidIdleTimeout   = errors.New("session idle-timeout must be positive")
	ErrInvalidSweepInterval = errors.New("session sweep-interval must be positive")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Session  Session `yaml:"session"`
}

type Session struct {
	IdleTimeout   time.Duration `yaml:"idle-timeout" env:"SESSION_IDLE_TIMEOUT" env-default:"24h"`
	SweepInterval time.Duration `yaml:"sweep-interval" env:"SESSION_SWEEP_INTERVAL" env-default:"1h"`
}

// MustLoad - load all configurations in config.yml file, falling back to the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Session.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (that *Session) validate() error {
	if that.IdleTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidIdleTimeout, that.IdleTimeout)
	}

	if that.SweepInterval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSweepInterval, that.SweepInterval)
	}

	return nil
}
