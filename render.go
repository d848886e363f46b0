package scribe

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderHTML converts note content, read as GitHub-flavoured Markdown, to HTML.
// Raw HTML in the content is omitted.
func RenderHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
