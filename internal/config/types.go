package config

import "time"

// Config holds all runtime configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	AdminPIN      string
	ScoreDebounce time.Duration
	Turso         TursoConfig
	Slack         SlackConfig
	ProjectID     string
}

// TursoConfig holds the connection details for an embedded-replica database.
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

// SlackConfig holds the credentials for the league's Slack workspace.
type SlackConfig struct {
	Token     string
	ChannelID string
}
