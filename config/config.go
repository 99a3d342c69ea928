package config

import (
	"os"
	"strings"
)

// Config is the small set of knobs the server reads from the environment.
type Config struct {
	Port    string
	GinMode string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// Load reads configuration from the environment. godotenv, if a .env file is
// present, has already populated it by the time this runs.
func Load() Config {
	return Config{
		Port:    envOrDefault("PORT", "8080"),
		GinMode: envOrDefault("GIN_MODE", ""),
	}
}
