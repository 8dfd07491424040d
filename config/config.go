// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"loan-tranche/domain"
)

// Config holds application configuration
type Config struct {
	Port     int
	LogLevel string
	DevMode  bool // pretty console logs

	RedisAddr string // empty keeps the cache in memory
	CacheTTL  time.Duration

	// EvaluationPrincipal is the total loan amount used when a search does not give one.
	EvaluationPrincipal float64
	Currency            string
	MaxStoredSearches   int

	RateLimitCapacity int
	RateLimitWindow   time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnvAsInt("PORT", 8080),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DevMode:             getEnvAsBool("DEV_MODE", false),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		CacheTTL:            getEnvAsDuration("CACHE_TTL", time.Hour),
		EvaluationPrincipal: getEnvAsFloat("EVALUATION_PRINCIPAL", 300000),
		Currency:            getEnv("CURRENCY", "EUR"),
		MaxStoredSearches:   getEnvAsInt("MAX_STORED_SEARCHES", 1000),
		RateLimitCapacity:   getEnvAsInt("RATE_LIMIT_CAPACITY", 5),
		RateLimitWindow:     getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values the services depend on.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("PORT must be between 1 and 65535")
	}
	if c.EvaluationPrincipal <= 0 {
		return errors.New("EVALUATION_PRINCIPAL must be positive")
	}
	if c.RateLimitCapacity <= 0 {
		return errors.New("RATE_LIMIT_CAPACITY must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return errors.New("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// DefaultRateTable is the sample rate grid, shortest duration first.
func DefaultRateTable() []domain.RateOffer {
	return []domain.RateOffer{
		{DurationYears: 10, AnnualRatePercent: 2.9},
		{DurationYears: 12, AnnualRatePercent: 3.2},
		{DurationYears: 15, AnnualRatePercent: 3.5},
		{DurationYears: 20, AnnualRatePercent: 3.8},
		{DurationYears: 22, AnnualRatePercent: 3.8},
		{DurationYears: 25, AnnualRatePercent: 4.4},
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
