package fancyblog

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/fancyblog/markdown"
)

// handleHome serves the feed page. An optional ?tag= query filters the
// feed; the viewer's timezone comes from the X-Timezone header or tz
// cookie and affects display formatting only.
func (a *App) handleHome(c echo.Context) error {
	tag := c.QueryParam("tag")
	now := a.now()
	posts := visiblePosts(a.Store.LoadAll(), now)
	loc := viewerTimezone(c)
	items := BuildFeed(posts, loc, tag, now)
	return Render(c, a.Views.Home(items, tag, CollectTags(posts), a.Config.URL))
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Store.LoadSlug(slug)
	if err != nil {
		var malformed *MalformedError
		if errors.As(err, &malformed) {
			c.Logger().Warnf("post %s unreadable: %v", slug, err)
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		}
		return err
	}
	published := FormatPublished(post.PublishAt, viewerTimezone(c))
	body := markdown.Markdown(post.Body)
	return Render(c, a.Views.Post(post, body, published, a.Config.URL))
}

func (a *App) handleAsset(c echo.Context) error {
	name := c.Param("*")
	b, err := a.Assets.Get(name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	return c.Blob(http.StatusOK, contentType, b)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.FaviconPath)
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, "User-agent: *\nAllow: /\n\nSitemap: "+a.Config.URL+"/sitemap.xml\n")
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, visiblePosts(a.Store.LoadAll(), a.now()))
}

func (a *App) handleRSS(c echo.Context) error {
	return a.renderRSS(c, visiblePosts(a.Store.LoadAll(), a.now()))
}

// visiblePosts applies the publish gate shared by every listing surface:
// a post scheduled after now stays hidden, including its tags.
func visiblePosts(posts []Post, now time.Time) []Post {
	visible := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.PublishAt.After(now) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
