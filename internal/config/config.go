package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"invoiceportal/internal/logger"
)

// DocumentAI holds the settings for the optional scanned-invoice
// importer. All fields may stay empty when the import command is not
// used.
type DocumentAI struct {
	ProjectID        string
	Location         string
	ProcessorID      string
	ProcessorVersion string
	Timeout          time.Duration
}

type Config struct {
	// HTTP Configuration
	Port string

	// Document AI Configuration (import command only)
	DocumentAI DocumentAI

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

func Load() (*Config, error) {
	config := &Config{
		Port: getEnv("PORT", "8000"),
		DocumentAI: DocumentAI{
			ProjectID:        getEnv("GOOGLE_CLOUD_PROJECT", ""),
			Location:         getEnv("GOOGLE_CLOUD_LOCATION", "us"),
			ProcessorID:      getEnv("DOCUMENT_AI_PROCESSOR_ID", ""),
			ProcessorVersion: getEnv("DOCUMENT_AI_PROCESSOR_VERSION", ""),
			Timeout:          60 * time.Second,
		},
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stdout"),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
