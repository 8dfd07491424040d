package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "DEV_MODE", "REDIS_ADDR", "CACHE_TTL",
		"EVALUATION_PRINCIPAL", "CURRENCY", "MAX_STORED_SEARCHES", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_WINDOW"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevMode)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, 300000.0, cfg.EvaluationPrincipal)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 5, cfg.RateLimitCapacity)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEV_MODE", "true")
	t.Setenv("EVALUATION_PRINCIPAL", "250000.5")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.DevMode)
	assert.Equal(t, 250000.5, cfg.EvaluationPrincipal)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
}

func TestLoad_RejectsNonPositivePrincipal(t *testing.T) {
	t.Setenv("EVALUATION_PRINCIPAL", "-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestDefaultRateTable(t *testing.T) {
	table := DefaultRateTable()
	require.Len(t, table, 6)

	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i].DurationYears, table[i-1].DurationYears)
	}

	table[0].AnnualRatePercent = 99
	assert.Equal(t, 2.9, DefaultRateTable()[0].AnnualRatePercent, "each call returns a fresh table")
}
