package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nDmitry/mediafeeds/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://mediadrop@db/mediadrop")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("SITE_BASE_URL", "https://media.example.com/")
	t.Setenv("FEED_MAX_ITEMS", "250")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("SHUTDOWN_TIMEOUT", "bogus")
	t.Setenv("SETTINGS_DATABASE_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "https://media.example.com", cfg.SiteBaseURL)
	assert.Equal(t, 250, cfg.FeedMaxItems)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.SettingsDatabaseURL, "settings share the media database by default")
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestReadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	contents := `{"sitemaps_display": "True", "rss_display": false, "featured_category": 3}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	settings, err := config.ReadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, "True", settings["sitemaps_display"])
	assert.Equal(t, "false", settings["rss_display"])
	assert.Equal(t, "3", settings["featured_category"])
}

func TestReadSettings_Errors(t *testing.T) {
	_, err := config.ReadSettings(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "could not read settings file")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err = config.ReadSettings(path)
	assert.ErrorContains(t, err, "could not parse settings file")
}
