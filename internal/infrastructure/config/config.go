package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name, e.g. MCBA_LOG_LEVEL.
const Prefix = "MCBA"

// Log holds logging configuration.
type Log struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"` // text or json
}

// OTEL holds metrics exporter configuration.
type OTEL struct {
	Enabled  bool   `envconfig:"OTEL_ENABLED" default:"false"`
	Endpoint string `envconfig:"OTEL_ENDPOINT"`
	Insecure bool   `envconfig:"OTEL_INSECURE" default:"false"`
}

// Config holds settings shared by every command.
type Config struct {
	Log            Log
	OTEL           OTEL
	HTTPPort       int    `envconfig:"HTTP_PORT" default:"8080"`
	CurrencySymbol string `envconfig:"CURRENCY_SYMBOL" default:"$"`
}

// Load reads an optional dotenv file and then MCBA_* environment variables.
// A missing envFile is not an error; variables already set in the
// environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}
