package fancyblog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// AssetCache is a lazily-populated in-memory byte cache over a static
// assets directory. An entry is created on the first successful read of a
// filename and kept for the lifetime of the process; asset content is
// treated as immutable, so nothing is ever invalidated or evicted.
//
// Two concurrent first-reads of the same file may both hit disk; the last
// one to take the write lock wins the cached copy. Both callers still get
// correct bytes, so the duplicate read is accepted rather than deduplicated.
type AssetCache struct {
	mu   sync.RWMutex
	dir  string
	data map[string][]byte

	// readFile is swapped out in tests to count disk reads.
	readFile func(string) ([]byte, error)
}

// NewAssetCache creates an empty cache over the given assets directory.
func NewAssetCache(dir string) *AssetCache {
	return &AssetCache{
		dir:      dir,
		data:     make(map[string][]byte),
		readFile: os.ReadFile,
	}
}

// Get returns the contents of the named asset, reading it from disk the
// first time and serving the cached copy afterwards. Callers always
// receive a copy; the cached buffer is never aliased out. Names that
// would escape the assets directory return ErrNotFound.
func (c *AssetCache) Get(name string) ([]byte, error) {
	if !filepath.IsLocal(name) {
		return nil, ErrNotFound
	}
	return c.fill(name, func() ([]byte, error) {
		return c.readFile(filepath.Join(c.dir, name))
	})
}

// Variant caches bytes computed from an asset under a synthetic key, such
// as a resized image. Keys use a "|" separator so they cannot collide
// with on-disk asset names.
func (c *AssetCache) Variant(key string, compute func() ([]byte, error)) ([]byte, error) {
	return c.fill(key, compute)
}

func (c *AssetCache) fill(key string, load func() ([]byte, error)) ([]byte, error) {
	c.mu.RLock()
	cached, ok := c.data[key]
	c.mu.RUnlock()
	if ok {
		return append([]byte(nil), cached...), nil
	}

	b, err := load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load asset %s: %w", key, err)
	}

	c.mu.Lock()
	c.data[key] = b
	c.mu.Unlock()
	return append([]byte(nil), b...), nil
}
