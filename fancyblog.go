// Package fancyblog is a file-backed blog engine built with Go, Echo, and
// templ. Posts live as one JSON or Markdown file each on disk and are
// re-read per request, static assets are served through an in-memory
// cache, and the host application supplies its own templ templates via
// the ViewFuncs struct.
package fancyblog

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/fancyblog/analytics"
)

// ViewFuncs holds user-provided templ components that the framework calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Home        func(items []FeedItem, activeTag string, tags []string, siteURL string) templ.Component
	Post        func(post Post, body templ.Component, published string, siteURL string) templ.Component
	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central fancyblog application. It wires together the post
// store, asset cache, handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Assets *AssetCache
	Views  ViewFuncs

	analyticsStore *analytics.Store
	customRoutes   []func(*App)
	now            func() time.Time
}

// New creates a new fancyblog App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  views,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the store, cache, middleware, and routes, then starts
// the server.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init wires everything short of listening, so tests can drive the Echo
// instance directly.
func (a *App) init() error {
	a.Store = NewStore(a.Config.PostsDir)
	a.Assets = NewAssetCache(a.Config.AssetsDir)

	if a.Config.AnalyticsDatabasePath != "" {
		store, err := analytics.NewStore(a.Config.AnalyticsDatabasePath)
		if err != nil {
			return fmt.Errorf("fancyblog: init analytics: %w", err)
		}
		a.analyticsStore = store
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/*", a.handleAsset)
	e.GET("/img/:width/:name", a.handleImage)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleRSS)
	e.GET("/", a.handleHome)
	e.GET("/post/:slug/", a.handlePost)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.analyticsStore != nil {
		return a.analyticsStore.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("fancyblog: required environment variable %s is not set", key)
	}
	return v
}
