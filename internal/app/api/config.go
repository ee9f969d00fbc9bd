package api

import (
	"os"
	"strings"

	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the API process. The
// Postgres DSN is read by the platform postgres package directly.
type Config struct {
	Port              string
	TemporalAddress   string
	TemporalNamespace string
	TemporalDisabled  bool
}

// LoadConfig reads environment variables and applies defaults.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "3000"),
		TemporalAddress:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:  isTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
