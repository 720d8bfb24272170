// Package normalize implements the Transformer interface for HTML output.
// It converts the engine's HTML pages into Markdown, handy when downstream
// consumers want Markdown but the engine run requested HTML.
package normalize

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// MarkdownTransformer converts HTML to Markdown using html-to-markdown.
type MarkdownTransformer struct{}

// New creates a MarkdownTransformer.
func New() *MarkdownTransformer {
	return &MarkdownTransformer{}
}

// Transform converts an HTML fragment into Markdown.
func (t *MarkdownTransformer) Transform(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
