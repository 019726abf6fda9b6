// Package config loads the service's runtime configuration from the
// environment, with an optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting the demo binary needs.
// Provider API keys are optional: a missing key simply disables that
// provider in the gateway's registry rather than failing startup.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"local"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`

	// ProviderRPS bounds outbound request rate per provider.
	ProviderRPS float64 `env:"PROVIDER_RPS" envDefault:"2"`

	// BlockingPoolSize bounds concurrent measurement-phase dispatches.
	BlockingPoolSize int `env:"BLOCKING_POOL_SIZE" envDefault:"4"`
}

// Load reads .env (if present, ignored if not) then parses the process
// environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		// Absence of a .env file is expected outside local development;
		// only a malformed file is worth surfacing.
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
