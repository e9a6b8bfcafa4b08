package views_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/eringen/fancyblog"
	"github.com/eringen/fancyblog/markdown"
	"github.com/eringen/fancyblog/views"
)

var site = fancyblog.SiteConfig{
	Name:        "Fancy Blog",
	URL:         "http://blog.test",
	Description: "Your daily dose of awesome reads!",
}

func TestHome(t *testing.T) {
	items := []fancyblog.FeedItem{
		{Title: "A <Great> Post", Published: "October 29, 2024 at 3:30 PM UTC",
			Summary: "teaser", Link: "/post/a-great-post", ImageURL: "/public/cover.jpg"},
	}
	var buf bytes.Buffer
	if err := views.Home(site, items, "software", []string{"software", "travel"}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render home: %v", err)
	}
	body := buf.String()

	if !strings.Contains(body, "A &lt;Great&gt; Post") {
		t.Errorf("title not escaped: %q", body)
	}
	if !strings.Contains(body, "October 29, 2024 at 3:30 PM UTC") {
		t.Errorf("missing formatted date")
	}
	if !strings.Contains(body, `href="/post/a-great-post"`) {
		t.Errorf("missing post link")
	}
	if !strings.Contains(body, "?tag=travel") {
		t.Errorf("missing tag link in sidebar")
	}
	if !strings.Contains(body, "Fancy Blog") {
		t.Errorf("missing site name in chrome")
	}
}

func TestHomeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := views.Home(site, nil, "", nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render home: %v", err)
	}
	if !strings.Contains(buf.String(), "Nothing here yet") {
		t.Errorf("empty feed placeholder missing: %q", buf.String())
	}
}

func TestPost(t *testing.T) {
	post := fancyblog.Post{
		Title:   "Hello World",
		Slug:    "hello-world",
		Summary: "first post",
		Tags:    []string{"software"},
	}
	body := markdown.Markdown("# Hello\n\nSome *emphasis*.")

	var buf bytes.Buffer
	if err := views.Post(site, post, body, "October 29, 2024 at 3:30 PM UTC").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render post: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Hello World") {
		t.Errorf("missing post title")
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Errorf("markdown body not rendered: %q", out)
	}
	if !strings.Contains(out, "BlogPosting") {
		t.Errorf("missing JSON-LD block")
	}
}

func TestErrorPages(t *testing.T) {
	var notFound bytes.Buffer
	if err := views.NotFound(site).Render(context.Background(), &notFound); err != nil {
		t.Fatalf("render 404: %v", err)
	}
	if !strings.Contains(notFound.String(), "404") {
		t.Errorf("404 page missing marker: %q", notFound.String())
	}

	var serverError bytes.Buffer
	if err := views.ServerError(site).Render(context.Background(), &serverError); err != nil {
		t.Fatalf("render error page: %v", err)
	}
	if !strings.Contains(serverError.String(), "Back home") {
		t.Errorf("error page missing home link: %q", serverError.String())
	}
}
