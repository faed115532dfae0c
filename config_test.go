package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "IMAGES_DIR", "ANALYTICS_ENABLED", "DB_PATH", "VISITOR_RETENTION", "ADMIN_USERNAME"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./images", cfg.ImagesDir)
	assert.True(t, cfg.AnalyticsEnabled)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, 365*24*time.Hour, cfg.VisitorRetention)
	assert.Equal(t, "admin", cfg.AdminUsername)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ANALYTICS_ENABLED", "false")
	t.Setenv("VISITOR_RETENTION", "720h")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.False(t, cfg.AnalyticsEnabled)
	assert.Equal(t, 720*time.Hour, cfg.VisitorRetention)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("VISITOR_RETENTION", "forever")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "parse env")
}
