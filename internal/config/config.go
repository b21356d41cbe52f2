package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nDmitry/mediafeeds/internal/entity"
)

// Load builds the service configuration from environment variables
func Load() (*entity.Config, error) {
	cfg := &entity.Config{
		Port:            getenv("HTTP_SERVER_PORT", "8080"),
		RedisAddr:       fmt.Sprintf("%s:%s", getenv("REDIS_HOST", "redis"), getenv("REDIS_PORT", "6379")),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SettingsFile:    os.Getenv("SETTINGS_FILE"),

		SettingsDatabaseURL: os.Getenv("SETTINGS_DATABASE_URL"),

		SiteBaseURL:     strings.TrimRight(getenv("SITE_BASE_URL", "http://localhost:8080"), "/"),
		BaseDir:         getenv("APP_BASE_DIR", "."),
		FeedMaxItems:    parseIntEnv("FEED_MAX_ITEMS", entity.SitemapMediaLimit),
		AllowedOrigins:  splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		ShutdownTimeout: parseDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
