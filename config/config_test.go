package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORTFOLIO_OUTPUT", "SCRAPE_OUTPUT", "PORTFOLIO_LOCALE", "PORTFOLIO_FORMAT",
		"LOG_LEVEL", "SCRAPE_TIMEOUT", "CACHE_DIR", "DATABASE_URL", "CACHE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "portfolio_data.json", cfg.OutputFile)
	assert.Equal(t, "linkedin_data.json", cfg.ScrapeOutputFile)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 10*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_OUTPUT", "out.yaml")
	t.Setenv("PORTFOLIO_LOCALE", "en")
	t.Setenv("SCRAPE_TIMEOUT", "3s")
	t.Setenv("CACHE_TTL", "garbage")

	cfg := Load()
	assert.Equal(t, "out.yaml", cfg.OutputFile)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 3*time.Second, cfg.ScrapeTimeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
}
