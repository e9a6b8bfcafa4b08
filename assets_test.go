package fancyblog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func setupTestAssets(t *testing.T) (*AssetCache, string, *int) {
	t.Helper()
	dir := t.TempDir()
	cache := NewAssetCache(dir)
	reads := new(int)
	cache.readFile = func(path string) ([]byte, error) {
		*reads++
		return os.ReadFile(path)
	}
	return cache, dir, reads
}

func writeAsset(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		t.Fatalf("write asset: %v", err)
	}
}

func TestAssetCacheSecondGetSkipsDisk(t *testing.T) {
	cache, dir, reads := setupTestAssets(t)
	writeAsset(t, dir, "style.css", []byte("body { color: red }"))

	first, err := cache.Get("style.css")
	if err != nil {
		t.Fatalf("first Get failed: %v", err)
	}
	second, err := cache.Get("style.css")
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("Get results differ: %q vs %q", first, second)
	}
	if *reads != 1 {
		t.Errorf("disk reads = %d, want 1", *reads)
	}
}

func TestAssetCacheReturnsCopies(t *testing.T) {
	cache, dir, _ := setupTestAssets(t)
	writeAsset(t, dir, "logo.svg", []byte("<svg/>"))

	b, err := cache.Get("logo.svg")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	b[0] = 'X'

	again, err := cache.Get("logo.svg")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(again, []byte("<svg/>")) {
		t.Errorf("cached bytes were mutated through a returned slice: %q", again)
	}
}

func TestAssetCacheTraversal(t *testing.T) {
	cache, dir, reads := setupTestAssets(t)
	if err := os.WriteFile(filepath.Join(filepath.Dir(dir), "secret"), []byte("top"), 0o644); err != nil {
		t.Fatalf("write outside file: %v", err)
	}

	for _, name := range []string{"../secret", "..", "css/../../secret", "/etc/passwd"} {
		if _, err := cache.Get(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%q) = %v, want ErrNotFound", name, err)
		}
	}
	if *reads != 0 {
		t.Errorf("traversal attempts hit disk %d times", *reads)
	}
}

func TestAssetCacheMissing(t *testing.T) {
	cache, _, _ := setupTestAssets(t)
	if _, err := cache.Get("missing.css"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing.css) = %v, want ErrNotFound", err)
	}
}

func TestAssetCacheNestedName(t *testing.T) {
	cache, dir, _ := setupTestAssets(t)
	if err := os.MkdirAll(filepath.Join(dir, "css"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeAsset(t, dir, filepath.Join("css", "main.css"), []byte("p {}"))

	b, err := cache.Get("css/main.css")
	if err != nil {
		t.Fatalf("Get(css/main.css) failed: %v", err)
	}
	if !bytes.Equal(b, []byte("p {}")) {
		t.Errorf("Get(css/main.css) = %q", b)
	}
}

func TestAssetCacheVariant(t *testing.T) {
	cache, _, _ := setupTestAssets(t)
	computes := 0
	load := func() ([]byte, error) {
		computes++
		return []byte("variant bytes"), nil
	}

	for i := 0; i < 3; i++ {
		b, err := cache.Variant("pic.png|w=400", load)
		if err != nil {
			t.Fatalf("Variant failed: %v", err)
		}
		if string(b) != "variant bytes" {
			t.Errorf("Variant = %q", b)
		}
	}
	if computes != 1 {
		t.Errorf("variant computed %d times, want 1", computes)
	}
}

func TestAssetCacheConcurrentGets(t *testing.T) {
	cache, dir, _ := setupTestAssets(t)
	writeAsset(t, dir, "hot.js", []byte("console.log(1)"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := cache.Get("hot.js")
			if err != nil || !bytes.Equal(b, []byte("console.log(1)")) {
				t.Errorf("concurrent Get = %q, %v", b, err)
			}
		}()
	}
	wg.Wait()
}
