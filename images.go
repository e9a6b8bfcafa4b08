package fancyblog

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const jpegQuality = 80

// imageWidths lists the variant sizes the /img/ route will produce, so
// the variant cache stays bounded by assets × widths.
var imageWidths = map[int]bool{200: true, 400: true, 800: true}

// handleImage serves a downscaled JPEG variant of a static asset, e.g.
// /img/400/cover.png. A variant is computed once and kept in the asset
// cache under a synthetic key.
func (a *App) handleImage(c echo.Context) error {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil || !imageWidths[width] {
		return echo.ErrNotFound
	}
	name := c.Param("name")
	key := fmt.Sprintf("%s|w=%d", name, width)
	b, err := a.Assets.Variant(key, func() ([]byte, error) {
		src, err := a.Assets.Get(name)
		if err != nil {
			return nil, err
		}
		return resizeJPEG(src, width)
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", b)
}

// resizeJPEG decodes src, scales it down to the given width when wider,
// and encodes the result as JPEG. Images already narrow enough are only
// re-encoded.
func resizeJPEG(src []byte, width int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
