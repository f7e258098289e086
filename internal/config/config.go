package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	LogLevel    zapcore.Level
	Gemini      GeminiConfig
	Database    DatabaseConfig

	// DefinitionRetentionDays is how long cached definitions are kept
	DefinitionRetentionDays int
}

// GeminiConfig holds generative language API settings
type GeminiConfig struct {
	APIKey      string
	Model       string
	SpeechModel string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Gemini: GeminiConfig{
			APIKey:      os.Getenv("GEMINI_API_KEY"),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			SpeechModel: getEnv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "spellingspark"),
			User:     getEnv("DB_USER", "spellingspark"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	retention, err := strconv.Atoi(getEnv("DEFINITION_RETENTION_DAYS", "30"))
	if err != nil || retention < 1 {
		return nil, fmt.Errorf("DEFINITION_RETENTION_DAYS must be a positive integer")
	}
	cfg.DefinitionRetentionDays = retention

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks that every required variable was set
func (c *Config) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"BOT_TOKEN", c.BotToken},
		{"BOT_PASSWORD", c.BotPassword},
		{"GEMINI_API_KEY", c.Gemini.APIKey},
		{"DB_PASSWORD", c.Database.Password},
	}

	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
