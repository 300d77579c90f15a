package config

import (
	"os"
	"strconv"
	"time"

	"adqa/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Paths     PathConfig
	LinkCheck LinkCheckConfig
	Charts    ChartConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// PathConfig holds file system paths
type PathConfig struct {
	// MediaDir stores uploads, generated reports, and chart files
	MediaDir string
	// QuestionsFile optionally overrides the built-in question list
	QuestionsFile string
}

// LinkCheckConfig holds settings for the final URL checker
type LinkCheckConfig struct {
	Timeout     time.Duration
	Concurrency int
}

// ChartConfig holds chart rendering settings
type ChartConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("SERVER_PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Paths: PathConfig{
			MediaDir:      getEnvOrDefault("MEDIA_DIR", "media"),
			QuestionsFile: os.Getenv("QUESTIONS_FILE"),
		},
		LinkCheck: LinkCheckConfig{
			Timeout:     getEnvDurationOrDefault("LINK_CHECK_TIMEOUT", 3*time.Second),
			Concurrency: getEnvIntOrDefault("LINK_CHECK_CONCURRENCY", 8),
		},
		Charts: ChartConfig{
			Enabled: getEnvBoolOrDefault("CHARTS_ENABLED", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("SERVER_PORT must not be empty")
	}
	if config.Paths.MediaDir == "" {
		return errors.ConfigInvalid("MEDIA_DIR must not be empty")
	}
	if config.LinkCheck.Timeout <= 0 {
		return errors.ConfigInvalid("LINK_CHECK_TIMEOUT must be positive")
	}
	if config.LinkCheck.Concurrency <= 0 {
		return errors.ConfigInvalid("LINK_CHECK_CONCURRENCY must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
