package fancyblog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// ErrNotFound is returned when a requested post or asset does not exist.
// Path traversal attempts collapse into the same error so callers cannot
// distinguish a blocked identifier from a missing one.
var ErrNotFound = errors.New("fancyblog: not found")

// MalformedError reports a post file whose payload could not be decoded.
// It is always recoverable: a single corrupt file must never take the
// server down.
type MalformedError struct {
	Name string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed post %s: %v", e.Name, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// Store loads posts from a directory of one-file-per-post records.
// It keeps no cache and no state beyond the directory path: every load
// re-reads and re-parses the backing file, so edits on disk are visible
// without a restart, and concurrent loads need no synchronization.
type Store struct {
	dir  string
	logf func(format string, args ...any)
}

// NewStore creates a Store over the given posts directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir, logf: log.Printf}
}

// List returns the filenames in the posts directory. A missing or
// unreadable directory yields an empty list, not an error.
func (s *Store) List() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logf("fancyblog: list posts in %s: %v", s.dir, err)
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

// Load reads and decodes a single post by filename. The post's Slug is
// always the filename stem, regardless of what the payload says.
// Identifiers that would escape the posts directory return ErrNotFound.
func (s *Store) Load(name string) (Post, error) {
	if !filepath.IsLocal(name) {
		return Post{}, ErrNotFound
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return Post{}, ErrNotFound
	}
	if err != nil {
		return Post{}, fmt.Errorf("read post %s: %w", name, err)
	}

	var post Post
	if strings.HasSuffix(name, ".md") {
		post, err = decodeMarkdownPost(name, raw)
	} else {
		err = json.Unmarshal(raw, &post)
		if err != nil {
			err = &MalformedError{Name: name, Err: err}
		}
	}
	if err != nil {
		return Post{}, err
	}
	post.Slug = strings.TrimSuffix(name, filepath.Ext(name))
	return post, nil
}

// LoadSlug resolves a URL slug to its backing file, preferring the JSON
// format over Markdown-with-frontmatter.
func (s *Store) LoadSlug(slug string) (Post, error) {
	post, err := s.Load(slug + ".json")
	if !errors.Is(err, ErrNotFound) {
		return post, err
	}
	return s.Load(slug + ".md")
}

// LoadAll lists the posts directory and loads every post in it, newest
// first by publish instant. A post that fails to load is skipped with a
// logged warning; one corrupt file never aborts the listing.
func (s *Store) LoadAll() []Post {
	names := s.List()
	posts := make([]Post, 0, len(names))
	for _, name := range names {
		post, err := s.Load(name)
		if err != nil {
			s.logf("fancyblog: skip post %s: %v", name, err)
			continue
		}
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].PublishAt.After(posts[j].PublishAt)
	})
	return posts
}

// markdownMeta is the YAML frontmatter block of a .md post. The field set
// mirrors the JSON format; the Markdown body follows the frontmatter.
type markdownMeta struct {
	Title     string   `yaml:"title"`
	ImageURL  string   `yaml:"image_url"`
	Summary   string   `yaml:"summary"`
	Timestamp string   `yaml:"timestamp"`
	Tags      []string `yaml:"tags"`
}

func decodeMarkdownPost(name string, raw []byte) (Post, error) {
	var meta markdownMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return Post{}, &MalformedError{Name: name, Err: err}
	}
	publishAt, err := time.Parse(time.RFC3339, meta.Timestamp)
	if err != nil {
		return Post{}, &MalformedError{Name: name, Err: fmt.Errorf("timestamp: %w", err)}
	}
	return Post{
		Title:     meta.Title,
		Body:      string(body),
		ImageURL:  meta.ImageURL,
		Summary:   meta.Summary,
		PublishAt: publishAt,
		Tags:      meta.Tags,
	}, nil
}
