package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.congress.gov/v3", cfg.Congress.BaseURL)
	require.Equal(t, 4, cfg.Congress.RetryAttempts)
	require.Equal(t, 500*time.Millisecond, cfg.Congress.RetryBackoff)
	require.InDelta(t, 1000.0/3600.0, cfg.Congress.Quota, 1e-9)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("congress.base_url", "http://localhost:9999/v3")
	viper.Set("congress.retry_backoff", "250ms")
	viper.Set("congress.quota", "1.5")
	viper.Set("logging.level", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9999/v3", cfg.Congress.BaseURL)
	require.Equal(t, 250*time.Millisecond, cfg.Congress.RetryBackoff)
	require.InDelta(t, 1.5, cfg.Congress.Quota, 1e-9)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestGetConfigReturnsLastLoaded(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)
	require.Same(t, cfg, GetConfig())
}
