package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"domainmodel/internal/log"
)

const (
	EnvLogLevel  = "DOMAINMODEL_LOG_LEVEL"
	EnvLogFormat = "DOMAINMODEL_LOG_FORMAT"
)

type Config struct {
	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment. The given .env files (or
// ./.env when none are given) are loaded first; missing files are ignored
// and variables already set in the environment win.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...)

	return &Config{
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, "warn")),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, "text")),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if _, err := parseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	validFormats := []string{"text", "json"}
	isValidFormat := false
	for _, format := range validFormats {
		if c.LogFormat == format {
			isValidFormat = true
			break
		}
	}
	if !isValidFormat {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// LogConfig builds a logger configuration writing to w. Invalid values fall
// back to warn level and text output; call Validate to surface them.
func (c *Config) LogConfig(w io.Writer) log.Config {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return log.Config{
		Level:     level,
		Component: log.ComponentApp,
		Handler:   handler,
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level '%s': must be one of [debug info warn error]", s)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
