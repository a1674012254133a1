package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Analytics AnalyticsConfig
	Snapshot  SnapshotConfig
	Share     ShareConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AnalyticsConfig holds the policy parameters of the report engine
type AnalyticsConfig struct {
	TaxRetention float64 // Share of a positive net yield kept after tax
}

// SnapshotConfig controls the scheduled recalculation of report snapshots
type SnapshotConfig struct {
	Enabled  bool
	Schedule string // Standard 5-field cron expression
}

// ShareConfig holds the settings for shareable report links.
// Sharing is disabled when Key is empty.
type ShareConfig struct {
	Key string        // Base64 fernet key
	TTL time.Duration // Lifetime of issued tokens
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	taxRetention, err := getEnvFloat("ANALYTICS_TAX_RETENTION", 0.7)
	if err != nil {
		return nil, err
	}
	if taxRetention <= 0 || taxRetention > 1 {
		return nil, fmt.Errorf("ANALYTICS_TAX_RETENTION must be in (0, 1], got %v", taxRetention)
	}

	shareTTL, err := time.ParseDuration(getEnv("SHARE_TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHARE_TOKEN_TTL: %w", err)
	}
	if shareTTL <= 0 {
		return nil, fmt.Errorf("SHARE_TOKEN_TTL must be positive, got %v", shareTTL)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/rental_analytics.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost"), ","),
		},
		Analytics: AnalyticsConfig{
			TaxRetention: taxRetention,
		},
		Snapshot: SnapshotConfig{
			Enabled:  getEnv("SNAPSHOT_ENABLED", "true") == "true",
			Schedule: getEnv("SNAPSHOT_CRON", "0 3 * * *"),
		},
		Share: ShareConfig{
			Key: getEnv("SHARE_TOKEN_KEY", ""),
			TTL: shareTTL,
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

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
