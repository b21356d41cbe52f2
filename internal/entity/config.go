package entity

import "time"

type Config struct {
	Port      string
	RedisAddr string

	DatabaseURL string
	// SettingsDatabaseURL points at a settings table outside DatabaseURL.
	SettingsDatabaseURL string
	SettingsFile        string

	// SiteBaseURL is the public scheme://host[/prefix] used for absolute links.
	SiteBaseURL string
	// BaseDir is the application directory static files are resolved against.
	BaseDir string

	// FeedMaxItems caps the limit parameter of RSS feeds.
	FeedMaxItems   int
	AllowedOrigins []string

	ShutdownTimeout time.Duration
}
