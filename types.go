package fancyblog

import "time"

// Post is the core content type, one file per post in the posts directory.
// Slug is never read from the payload: it is derived from the filename at
// load time and overwrites whatever the file carries.
type Post struct {
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url"`
	Summary   string    `json:"summary"`
	PublishAt time.Time `json:"timestamp"`
	Tags      []string  `json:"tags"`
	Slug      string    `json:"-"`
}

// Link returns the canonical path for the post page.
func (p Post) Link() string {
	return "/post/" + p.Slug
}

// FeedItem is the per-post view emitted by BuildFeed: everything a feed
// card template needs, with the publish instant already formatted for the
// viewer's timezone.
type FeedItem struct {
	Title     string
	ImageURL  string
	Published string
	Summary   string
	Link      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
