package fancyblog

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, dir, name string, width, height int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write png: %v", err)
	}
}

func TestResizeJPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 800, 600))); err != nil {
		t.Fatal(err)
	}

	out, err := resizeJPEG(buf.Bytes(), 400)
	if err != nil {
		t.Fatalf("resizeJPEG failed: %v", err)
	}
	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("output format = %q, want jpeg", format)
	}
	if got := img.Bounds().Dx(); got != 400 {
		t.Errorf("output width = %d, want 400", got)
	}
	if got := img.Bounds().Dy(); got != 300 {
		t.Errorf("output height = %d, want 300", got)
	}
}

func TestResizeJPEGKeepsNarrowImages(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 100, 50))); err != nil {
		t.Fatal(err)
	}

	out, err := resizeJPEG(buf.Bytes(), 400)
	if err != nil {
		t.Fatalf("resizeJPEG failed: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("narrow image was scaled: width = %d", img.Bounds().Dx())
	}
}

func TestImageRoute(t *testing.T) {
	app := newTestApp(t)
	writeTestPNG(t, app.Config.AssetsDir, "cover.png", 800, 600)

	rec := app.get(t, "/img/400/cover.png", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /img/400/cover.png = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=31536000" {
		t.Errorf("Cache-Control = %q", got)
	}

	if rec := app.get(t, "/img/123/cover.png", nil); rec.Code != http.StatusNotFound {
		t.Errorf("unsupported width = %d, want 404", rec.Code)
	}
	if rec := app.get(t, "/img/400/missing.png", nil); rec.Code != http.StatusNotFound {
		t.Errorf("missing source image = %d, want 404", rec.Code)
	}
}
