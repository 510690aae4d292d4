package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Size preloaded into the calculator form
	DefaultSize Input `json:"default_size"`

	// Application preferences
	Theme       string   `json:"theme"` // "light", "dark", "system"
	RecentSizes []string `json:"recent_sizes"`
	ExportDir   string   `json:"export_dir"` // empty = ask every time

	// API server
	APIAddr          string `json:"api_addr"`
	RedisAddr        string `json:"redis_addr"`        // empty = in-memory cache
	CacheTTLSeconds  int    `json:"cache_ttl_seconds"` // 0 = no expiry
	RateLimit        int    `json:"rate_limit"`        // requests per window and client
	RateLimitSeconds int    `json:"rate_limit_seconds"`
}

const maxRecentSizes = 10

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
// The default size is the smallest rim with its minimum width and profile.
func DefaultAppConfig() AppConfig {
	min := MinLimits[0]
	return AppConfig{
		DefaultSize: Input{
			Rim:     MinR,
			Width:   min.Width,
			Profile: max(MinProfileGlobal, min.Profile),
		},
		Theme:            "system",
		RecentSizes:      []string{},
		APIAddr:          ":8080",
		CacheTTLSeconds:  3600,
		RateLimit:        30,
		RateLimitSeconds: 60,
	}
}

// AddRecentSize moves key to the front of RecentSizes, dropping duplicates
// and keeping at most ten entries.
func (c *AppConfig) AddRecentSize(key string) {
	recent := []string{key}
	for _, k := range c.RecentSizes {
		if k != key {
			recent = append(recent, k)
		}
	}
	if len(recent) > maxRecentSizes {
		recent = recent[:maxRecentSizes]
	}
	c.RecentSizes = recent
}
