package config

import (
	"errors"
	"os"

	"sudoku-engine/pkg/constants"
)

// Config is the process-wide configuration for the HTTP server, loaded once
// at startup from the environment.
type Config struct {
	SessionSecret string
	Port          string
	StrategySet   string
}

// Load loads configuration from environment variables.
// Returns an error if SESSION_SECRET is not set, is the placeholder default,
// or is too short to sign session tokens with.
func Load() (*Config, error) {
	secret := os.Getenv("SESSION_SECRET")

	if secret == "" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET environment variable is required but not set")
	}

	if secret == "changeme" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET cannot be 'changeme' - please set a secure secret")
	}

	if len(secret) < 32 {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET must be at least 32 characters long")
	}

	strategySet := getEnv("STRATEGY_SET", constants.DefaultStrategySet)
	if _, ok := constants.StrategySets[strategySet]; !ok {
		return nil, errors.New("CONFIG ERROR: STRATEGY_SET names an unknown strategy set")
	}

	return &Config{
		SessionSecret: secret,
		Port:          getEnv("PORT", "8080"),
		StrategySet:   strategySet,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
