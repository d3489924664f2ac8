package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspovault/internal/models"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "RATE_LIMIT_MAX", "NOTIFICATION_TTL", "SEED_DATA", "REDIS_URL", "LINK_CHECK_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.True(t, cfg.SeedData)
	assert.Empty(t, cfg.RedisURL)
	assert.Zero(t, cfg.LinkCheckInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("RATE_LIMIT_MAX", "20")
	t.Setenv("NOTIFICATION_TTL", "250ms")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("LINK_CHECK_INTERVAL", "1h")

	cfg := Load()
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 20, cfg.RateLimitMax)
	assert.Equal(t, 250*time.Millisecond, cfg.NotificationTTL)
	assert.False(t, cfg.SeedData)
	assert.Equal(t, time.Hour, cfg.LinkCheckInterval)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "-3")
	t.Setenv("NOTIFICATION_TTL", "soon")
	t.Setenv("SEED_DATA", "maybe")

	cfg := Load()
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.True(t, cfg.SeedData)
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{BaseURL: "http://localhost:3000"}
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())

	cfg.CORSOrigins = "https://a.example.com, https://b.example.com,"
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins())
}

func TestLoadYAMLConfig_Missing(t *testing.T) {
	cfg, err := LoadYAMLConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Equal(t, models.DefaultCalendars, cfg.CalendarCatalog())
	assert.Empty(t, cfg.SeedData().Items)
}

func TestLoadYAMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
calendars:
  - id: heyorca-summit
    label: HeyOrca Summit Ideas
  - id: trending-audio
    label: Trending Audio
seed:
  items:
    - id: "yaml-1"
      url: https://linkedin.com/posts/1
      platform: linkedin
      calendar: heyorca-summit
      tags: [keynote, keynote, b2b]
      date_added: 2024-02-01T00:00:00Z
  collections:
    - id: "yaml-c1"
      name: Summit
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadYAMLConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	catalog := cfg.CalendarCatalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "trending-audio", catalog[1].ID)
	assert.Equal(t, "Trending Audio", catalog[1].Label)

	seed := cfg.SeedData()
	require.Len(t, seed.Items, 1)
	assert.Equal(t, models.PlatformLinkedIn, seed.Items[0].Platform)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), seed.Items[0].DateAdded)
	require.Len(t, seed.Collections, 1)
	assert.Equal(t, "Summit", seed.Collections[0].Name)
}

func TestLoadYAMLConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("calendars: [unterminated"), 0o600))

	_, err := LoadYAMLConfig(path)
	assert.Error(t, err)
}
