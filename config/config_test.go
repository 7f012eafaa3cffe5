package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "https://api.api-ninjas.com/v1/", cfg.Nutrition.BaseURL)
	assert.Equal(t, "data/dictionary.json", cfg.Dictionary.Path)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RECIPEAPP_SERVER_PORT", "9090")
	t.Setenv("RECIPEAPP_SERVER_ENVIRONMENT", "production")
	t.Setenv("RECIPEAPP_NUTRITION_API_KEY", "test-key-123")
	t.Setenv("RECIPEAPP_CACHE_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, "test-key-123", cfg.Nutrition.APIKey)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestBaseURLGetsTrailingSlash(t *testing.T) {
	t.Setenv("RECIPEAPP_NUTRITION_BASE_URL", "https://api.example.com/v1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1/", cfg.Nutrition.BaseURL)
}

func TestBlankBaseURLFallsBackToDefault(t *testing.T) {
	t.Setenv("RECIPEAPP_NUTRITION_BASE_URL", "   ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.api-ninjas.com/v1/", cfg.Nutrition.BaseURL)
}

func TestMissingAPIKeyIsNotAnError(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Nutrition.APIKey)
}
