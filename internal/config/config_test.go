package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Padroes(t *testing.T) {
	viper.Reset()

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "https://api.pipedrive.com", cfg.Pipedrive.BaseURL)
	assert.Equal(t, 14466882, cfg.Pipedrive.ExcludedUserID)
	assert.Equal(t, 500, cfg.Pipedrive.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Pipedrive.Timeout)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, []string{"today", "month"}, cfg.MetricsWarmup.Periods)
}

func TestNewConfig_VariaveisDeAmbiente(t *testing.T) {
	viper.Reset()

	t.Setenv("PIPEDRIVE_BASE_URL", "https://empresa.pipedrive.com/")
	t.Setenv("PIPEDRIVE_PAGE_SIZE", "0")
	t.Setenv("PIPEDRIVE_TIMEOUT", "10s")
	t.Setenv("CACHE_DRIVER", " Redis ")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://dashboard.empresa.com ,")
	t.Setenv("METRICS_WARMUP_PERIODS", "hoje,semana")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://empresa.pipedrive.com", cfg.Pipedrive.BaseURL)
	assert.Equal(t, 500, cfg.Pipedrive.PageSize)
	assert.Equal(t, 10*time.Second, cfg.Pipedrive.Timeout)
	assert.Equal(t, CacheDriverRedis, cfg.Cache.Driver)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://dashboard.empresa.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, []string{"hoje", "semana"}, cfg.MetricsWarmup.Periods)
}
