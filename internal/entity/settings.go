package entity

// Site setting keys read from the settings store
const (
	SettingSitemapsDisplay    = "sitemaps_display"
	SettingRSSDisplay         = "rss_display"
	SettingEnableCooliris     = "appearance_enable_cooliris"
	SettingFeaturedCategory   = "featured_category"
	SettingDefaultFeedResults = "default_feed_results"
)

// SettingEnabled is the literal value of an enabled boolean setting.
const SettingEnabled = "True"
