// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration.
type Config struct {
	// Server
	Port string
	Env  string

	// DefaultBudget is the monthly budget in effect until the user sets one.
	DefaultBudget decimal.Decimal
}

var appConfig *Config

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),
	}

	budgetStr := getEnv("DEFAULT_BUDGET", "30000")
	budget, err := decimal.NewFromString(budgetStr)
	if err != nil || budget.IsNegative() {
		log.Printf("Warning: invalid DEFAULT_BUDGET value '%s', falling back to 30000\n", budgetStr)
		budget = decimal.NewFromInt(30000)
	}
	config.DefaultBudget = budget

	appConfig = config
	return config, nil
}

// Get returns the application configuration.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
