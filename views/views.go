// Package views is the default page chrome for fancyblog sites: a
// Bootstrap card layout with header, navigation bar, sidebar, and footer.
// Sites that want their own look supply their own ViewFuncs instead.
package views

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/eringen/fancyblog"
)

// Funcs returns the default chrome wired up as a ViewFuncs struct.
func Funcs(site fancyblog.SiteConfig) fancyblog.ViewFuncs {
	return fancyblog.ViewFuncs{
		Home: func(items []fancyblog.FeedItem, activeTag string, tags []string, siteURL string) templ.Component {
			return Home(site, items, activeTag, tags)
		},
		Post: func(post fancyblog.Post, body templ.Component, published string, siteURL string) templ.Component {
			return Post(site, post, body, published)
		},
		NotFound:    func() templ.Component { return NotFound(site) },
		ServerError: func() templ.Component { return ServerError(site) },
	}
}

func component(fn func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(fn)
}

const pageCSS = `body { font-family: Arial, sans-serif; }
.header { background-color: #343a40; color: white; padding: 20px; text-align: center; }
.navbar-nav .nav-link { color: white !important; }
.post-card { margin-bottom: 20px; box-shadow: 0 4px 8px rgba(0, 0, 0, 0.1); transition: 0.3s; }
.post-card:hover { box-shadow: 0 8px 16px rgba(0, 0, 0, 0.2); }
.sidebar { padding: 20px; background-color: #f8f9fa; border-radius: 8px; }
.footer { background-color: #343a40; color: white; text-align: center; padding: 15px; margin-top: 20px; }`

// tzScript persists the browser's IANA timezone in the cookie the server
// reads for timestamp display.
const tzScript = `document.cookie = "tz=" + Intl.DateTimeFormat().resolvedOptions().timeZone + "; path=/; max-age=31536000";`

func pageOpen(w io.Writer, site fancyblog.SiteConfig, title string) error {
	_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css">
<link rel="stylesheet" href="https://unpkg.com/unpoly@4.0.0/dist/unpoly.min.css">
<style>%s</style>
<script>%s</script>
</head>
<body>
<div class="header"><h1>%s</h1><p>%s</p></div>
<nav class="navbar navbar-expand-lg navbar-dark bg-dark"><div class="container">
<a class="navbar-brand" href="/">%s</a>
<div class="collapse navbar-collapse"><ul class="navbar-nav ms-auto">
<li class="nav-item"><a class="nav-link active" href="/">Home</a></li>
<li class="nav-item"><a class="nav-link" href="/feed.xml">RSS</a></li>
</ul></div>
</div></nav>
<div class="container my-4"><div class="row">
`,
		html.EscapeString(title), pageCSS, tzScript,
		html.EscapeString(site.Name), html.EscapeString(site.Description),
		html.EscapeString(site.Name))
	return err
}

func pageClose(w io.Writer, site fancyblog.SiteConfig) error {
	_, err := fmt.Fprintf(w, `</div></div>
<div class="footer"><p>&copy; %s</p></div>
<script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/js/bootstrap.bundle.min.js"></script>
<script src="https://unpkg.com/unpoly@4.0.0/dist/unpoly.min.js"></script>
</body>
</html>`, html.EscapeString(site.Name))
	return err
}

func sidebar(w io.Writer, site fancyblog.SiteConfig, tags []string, activeTag string) error {
	if _, err := fmt.Fprintf(w, `<div class="col-lg-4"><div class="sidebar">
<h4>About Me</h4><p>%s</p><hr>
<h5>Categories</h5><ul class="list-unstyled">
<li><a href="/">All posts</a></li>
`, html.EscapeString(site.Description)); err != nil {
		return err
	}
	for _, t := range tags {
		marker := ""
		if t == activeTag {
			marker = " <strong>&larr;</strong>"
		}
		if _, err := fmt.Fprintf(w, `<li><a href="/?tag=%s">%s</a>%s</li>
`, url.QueryEscape(t), html.EscapeString(t), marker); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</ul></div></div>\n")
	return err
}

// Home renders the feed page: post cards on the left, tag sidebar on the right.
func Home(site fancyblog.SiteConfig, items []fancyblog.FeedItem, activeTag string, tags []string) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := pageOpen(w, site, site.Name); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="col-lg-8">
`); err != nil {
			return err
		}
		if len(items) == 0 {
			if _, err := io.WriteString(w, "<p>Nothing here yet.</p>\n"); err != nil {
				return err
			}
		}
		for _, item := range items {
			img := ""
			if item.ImageURL != "" {
				img = fmt.Sprintf(`<img src="%s" class="card-img-top" alt="Post Image">`,
					html.EscapeString(item.ImageURL))
			}
			if _, err := fmt.Fprintf(w, `<div class="card post-card">%s<div class="card-body">
<h5 class="card-title">%s</h5>
<p class="text-muted">Posted on %s</p>
<p class="card-text">%s</p>
<a class="btn btn-primary" href="%s">Read More</a>
</div></div>
`, img, html.EscapeString(item.Title), html.EscapeString(item.Published),
				html.EscapeString(item.Summary), html.EscapeString(item.Link)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</div>\n"); err != nil {
			return err
		}
		if err := sidebar(w, site, tags, activeTag); err != nil {
			return err
		}
		return pageClose(w, site)
	})
}

// Post renders a single post page with the Markdown body already converted.
func Post(site fancyblog.SiteConfig, post fancyblog.Post, body templ.Component, published string) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := pageOpen(w, site, post.Title+" | "+site.Name); err != nil {
			return err
		}
		img := ""
		if post.ImageURL != "" {
			img = fmt.Sprintf(`<img src="%s" class="card-img-top" alt="Post Image">`,
				html.EscapeString(post.ImageURL))
		}
		if _, err := fmt.Fprintf(w, `<div class="col-lg-8"><div class="card post-card">%s<div class="card-body">
<h1 class="card-title">%s</h1>
<p class="text-muted">Posted on %s</p>
`, img, html.EscapeString(post.Title), html.EscapeString(published)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `</div></div></div>
<script type="application/ld+json">%s</script>
`, fancyblog.BlogPostingJsonLD(post, site)); err != nil {
			return err
		}
		if err := sidebar(w, site, post.Tags, ""); err != nil {
			return err
		}
		return pageClose(w, site)
	})
}

// NotFound renders the themed 404 page.
func NotFound(site fancyblog.SiteConfig) templ.Component {
	return errorPage(site, "404", "That page has wandered off.")
}

// ServerError renders the generic error page.
func ServerError(site fancyblog.SiteConfig) templ.Component {
	return errorPage(site, "Something broke", "Try again in a little while.")
}

func errorPage(site fancyblog.SiteConfig, heading, detail string) templ.Component {
	return component(func(ctx context.Context, w io.Writer) error {
		if err := pageOpen(w, site, heading+" | "+site.Name); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<div class="col-lg-8"><h2>%s</h2><p>%s</p><a class="btn btn-primary" href="/">Back home</a></div>
`, html.EscapeString(heading), html.EscapeString(detail)); err != nil {
			return err
		}
		return pageClose(w, site)
	})
}
