// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Shared-expense service credentials.
	SplitwiseAPIKey  string
	SplitwiseBaseURL string

	// Rate limit for the tool endpoint, in limiter format (e.g. "100-M").
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. The Splitwise key is required: the sharing tools cannot
// degrade gracefully without credentials, so startup fails fast instead.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("SPLITWISE_API_KEY", "")
	viper.SetDefault("SPLITWISE_BASE_URL", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.SplitwiseAPIKey = viper.GetString("SPLITWISE_API_KEY")
	if cfg.SplitwiseAPIKey == "" {
		return nil, fmt.Errorf("SPLITWISE_API_KEY environment variable is required")
	}
	cfg.SplitwiseBaseURL = viper.GetString("SPLITWISE_BASE_URL")

	return cfg, nil
}
