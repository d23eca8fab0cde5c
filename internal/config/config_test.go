package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 100.0, cfg.Page.ScrollThreshold)
	assert.Equal(t, "first", cfg.Page.ScrollTieBreak)
	assert.Equal(t, "dark", cfg.Page.DefaultTheme)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Tracing.OTLPEndpoint)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
	assert.Empty(t, cfg.App.LogLevel)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "app:\n  port: \"9090\"\npage:\n  scroll_threshold: 80\n  default_theme: light\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("PAGE_SCROLL_TIE_BREAK", "last")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("APP_PORT", "7070")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("TRACING_SAMPLE_RATIO", "0.1")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, 80.0, cfg.Page.ScrollThreshold)
	assert.Equal(t, "light", cfg.Page.DefaultTheme)
	assert.Equal(t, "last", cfg.Page.ScrollTieBreak)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 0.1, cfg.Tracing.SampleRatio)
}
