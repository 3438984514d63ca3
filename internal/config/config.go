package config

import (
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultScoreDebounceMs = 400

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	debounceMs := defaultScoreDebounceMs
	if raw, ok := os.LookupEnv("SCORE_DEBOUNCE_MS"); ok {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			debounceMs = parsed
		} else {
			log.Warn("Invalid SCORE_DEBOUNCE_MS, using default", "value", raw, "default_ms", defaultScoreDebounceMs)
		}
	}

	cfg := Config{
		DBName:        getEnv("DB_NAME"),
		MigrationsDir: "./migrations",
		Port:          getEnv("PORT"),
		AdminPIN:      getEnv("ADMIN_PIN"),
		ScoreDebounce: time.Duration(debounceMs) * time.Millisecond,
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL"),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN"),
		},
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN"),
			ChannelID: getEnv("SLACK_CHANNEL_ID"),
		},
		ProjectID: getEnv("GCP_PROJECT"),
	}
	return cfg
}
