package otel

import "github.com/emiliopalmerini/mcba/internal/infrastructure/config"

// Config holds OTEL exporter configuration.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// FromConfig maps the shared configuration onto exporter settings.
func FromConfig(cfg config.OTEL) Config {
	return Config{
		Endpoint: cfg.Endpoint,
		Enabled:  cfg.Enabled,
		Insecure: cfg.Insecure,
	}
}
