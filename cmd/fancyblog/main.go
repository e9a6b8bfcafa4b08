// Command fancyblog serves a blog from a directory of post files and
// static assets. All site branding comes from environment variables.
package main

import (
	"log"

	"github.com/eringen/fancyblog"
	"github.com/eringen/fancyblog/views"
)

func main() {
	cfg := fancyblog.SiteConfig{
		Name:        fancyblog.EnvOr("SITE_NAME", "Fancy Blog"),
		URL:         fancyblog.EnvOr("SITE_URL", "http://localhost:8080"),
		Description: fancyblog.EnvOr("SITE_DESCRIPTION", "Your daily dose of awesome reads!"),
		Author:      fancyblog.EnvOr("SITE_AUTHOR", ""),

		Addr:      fancyblog.EnvOr("ADDR", ":8080"),
		PostsDir:  fancyblog.EnvOr("POSTS_DIR", "posts"),
		AssetsDir: fancyblog.EnvOr("ASSETS_DIR", "public"),

		AnalyticsDatabasePath: fancyblog.EnvOr("ANALYTICS_DB", ""),
	}

	app := fancyblog.New(cfg, views.Funcs(cfg))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
