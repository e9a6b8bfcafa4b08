package fancyblog

import (
	"slices"
	"time"
)

// publishedFormat renders a publish instant for display, e.g.
// "October 29, 2024 at 3:04 PM CET".
const publishedFormat = "January 2, 2006 at 3:04 PM MST"

// BuildFeed turns loaded posts into display items for the feed page.
//
// Posts scheduled after now are dropped before the tag filter is applied,
// so a future post never leaks through any query. When tag is non-empty a
// post survives only if its tag set contains exactly that string. The
// publish instant is converted to loc for formatting only; input order is
// preserved and inputs are never mutated.
func BuildFeed(posts []Post, loc *time.Location, tag string, now time.Time) []FeedItem {
	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		if p.PublishAt.After(now) {
			continue
		}
		if tag != "" && !slices.Contains(p.Tags, tag) {
			continue
		}
		items = append(items, FeedItem{
			Title:     p.Title,
			ImageURL:  p.ImageURL,
			Published: FormatPublished(p.PublishAt, loc),
			Summary:   p.Summary,
			Link:      p.Link(),
		})
	}
	return items
}

// FormatPublished formats an absolute publish instant in the viewer's
// timezone for presentation.
func FormatPublished(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(publishedFormat)
}
