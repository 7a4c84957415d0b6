package config

import (
	"os"
	"time"
)

// Config 应用配置
type Config struct {
	OutputFile       string
	ScrapeOutputFile string
	Locale           string
	Format           string
	LogLevel         string

	ScrapeTimeout        time.Duration
	ScrapeUserAgent      string
	ScrapeAcceptLanguage string

	CacheDir    string
	DatabaseURL string
	CacheTTL    time.Duration
}

// Load 从环境变量加载配置
func Load() *Config {
	return &Config{
		OutputFile:       getEnv("PORTFOLIO_OUTPUT", "portfolio_data.json"),
		ScrapeOutputFile: getEnv("SCRAPE_OUTPUT", "linkedin_data.json"),
		Locale:           getEnv("PORTFOLIO_LOCALE", "fr"),
		Format:           getEnv("PORTFOLIO_FORMAT", "json"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),

		ScrapeTimeout:        getDuration("SCRAPE_TIMEOUT", 10*time.Second),
		ScrapeUserAgent:      getEnv("SCRAPE_USER_AGENT", ""),
		ScrapeAcceptLanguage: getEnv("SCRAPE_ACCEPT_LANGUAGE", ""),

		CacheDir:    getEnv("CACHE_DIR", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CacheTTL:    getDuration("CACHE_TTL", 24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration 解析失败时使用默认值
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
