// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server configuration
	Addr string

	// Recommendation service configuration
	RecommenderURL     string
	RecommenderAPIKey  string
	RecommenderTimeout time.Duration

	// Conversation configuration
	ReplyDelay time.Duration

	// Storage configuration
	SettingsDBPath string

	// Spotify link resolver (optional, disabled when credentials are absent)
	SpotifyClientID     string
	SpotifyClientSecret string

	// Observability
	Debug bool
}

func Load() *Config {
	return &Config{
		// Server settings
		Addr: getEnv("ADDR", ":8080"),

		// Recommendation service settings
		RecommenderURL:     getEnv("RECOMMENDER_URL", "http://localhost:8787"),
		RecommenderAPIKey:  getEnv("RECOMMENDER_API_KEY", ""),
		RecommenderTimeout: getDurationEnv("RECOMMENDER_TIMEOUT", 30*time.Second),

		// Conversation settings
		ReplyDelay: getDurationEnv("REPLY_DELAY", 500*time.Millisecond),

		// Storage settings
		SettingsDBPath: getEnv("SETTINGS_DB_PATH", "sonic.db"),

		// Spotify settings
		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),

		// Observability settings
		Debug: getBoolEnv("DEBUG", false),
	}
}

// SpotifyEnabled reports whether the optional link resolver is configured.
func (c *Config) SpotifyEnabled() bool {
	return c.SpotifyClientID != "" && c.SpotifyClientSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
