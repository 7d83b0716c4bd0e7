package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Snapshot SnapshotConfig
	Charts   ChartConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// SnapshotConfig describes where the generated JSON documents live and how
// often to reload them. When BaseURL is set it takes precedence over DataDir.
type SnapshotConfig struct {
	DataDir         string
	BaseURL         string
	RefreshSchedule string // cron expression; empty disables scheduled refresh
}

// ChartConfig holds presentation parameters for the chart views. The top-K
// cutoffs are display choices, not data invariants, and can be overridden per
// request with the ?top= query parameter.
type ChartConfig struct {
	DistributionTopK int
	TableTopK        int
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Snapshot: SnapshotConfig{
			DataDir:         getEnv("DATA_DIR", "./public_data"),
			BaseURL:         getEnv("DATA_URL", ""),
			RefreshSchedule: getEnv("REFRESH_SCHEDULE", ""),
		},
		Charts: ChartConfig{
			DistributionTopK: getEnvInt("DISTRIBUTION_TOP_K", 8),
			TableTopK:        getEnvInt("TABLE_TOP_K", 15),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value.
// Non-numeric and negative values fall back to the default.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}
