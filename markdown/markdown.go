// Package markdown converts post bodies from Markdown to HTML.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// converter is stateless and safe for concurrent use. Raw HTML in post
// bodies passes through untouched: authors are trusted.
var converter = goldmark.New(
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Render converts Markdown source to HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

// Markdown returns a templ.Component that renders source as HTML.
func Markdown(source string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := Render(source)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	})
}
