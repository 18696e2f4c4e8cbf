// Package config provides configuration loading for the ocpiprice command.
package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// Config holds ocpiprice's environment-derived configuration.
type Config struct {
	LogLevel       zerolog.Level
	DetectTimeZone bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
		DetectTimeZone: parseBool(getEnv("DETECT_TIME_ZONE", "false")),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return v
}
