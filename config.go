package fancyblog

import "time"

// SiteConfig holds all configuration for a fancyblog site.
type SiteConfig struct {
	Name        string // Site name (default "Fancy Blog")
	URL         string // Canonical URL (default "http://localhost:8080")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr        string // Listen address (default ":8080")
	PostsDir    string // Directory of post files (default "posts")
	AssetsDir   string // Directory of static assets (default "public")
	FaviconPath string // Favicon file (default "public/favicon.svg")

	AnalyticsDatabasePath string // SQLite path for page-view counts; empty disables analytics
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Fancy Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:8080"
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.PostsDir == "" {
		c.PostsDir = "posts"
	}
	if c.AssetsDir == "" {
		c.AssetsDir = "public"
	}
	if c.FaviconPath == "" {
		c.FaviconPath = "public/favicon.svg"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App instance before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithClock replaces the clock used by the feed's publish gate.
// Tests use this to pin "now".
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
