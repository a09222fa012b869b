package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadFallsBackToDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 300*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 2, cfg.Search.MinTermLen)
	assert.Equal(t, 10, cfg.Dashboard.RecentLimit)
	assert.Equal(t, 5, cfg.Dashboard.TopCategories)
	assert.Equal(t, "pt-BR", cfg.View.Locale)
	assert.Equal(t, "BRL", cfg.View.Currency)
	assert.NotEmpty(t, cfg.Session.TokenFile)
}

func Test_LoadHonoursEnvironment(t *testing.T) {
	t.Setenv("FINPANEL_API_URL", "https://panel.example.com")
	t.Setenv("FINPANEL_SEARCH_DEBOUNCE_MS", "150")
	t.Setenv("FINPANEL_RECENT_LIMIT", "25")
	t.Setenv("FINPANEL_TOKEN_FILE", "/tmp/tok")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://panel.example.com", cfg.API.BaseURL)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.Debounce)
	assert.Equal(t, 25, cfg.Dashboard.RecentLimit)
	assert.Equal(t, "/tmp/tok", cfg.Session.TokenFile)
}
