package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsWithoutEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2.0, cfg.ProviderRPS)
	assert.Equal(t, 4, cfg.BlockingPoolSize)
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BLOCKING_POOL_SIZE", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, 8, cfg.BlockingPoolSize)
}
