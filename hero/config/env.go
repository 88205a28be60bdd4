package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds settings read from the environment. Command line flags
// override them.
type AppConfig struct {
	RosterDir string `env:"HEROES_ROSTER_DIR" envDefault:"rosters"`
	Roster    string `env:"HEROES_ROSTER"`
	Debug     bool   `env:"HEROES_DEBUG" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadAppConfig parses AppConfig from the environment
func LoadAppConfig() (*AppConfig, error) {
	var cfg AppConfig
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
