// Package extract implements the Transformer interface for HTML output.
// The conversion engine's HTML pages carry structural markup the consumer
// may not want; this transformer strips it down to plain text by:
//  1. Removing non-content elements (scripts, styles, images)
//  2. Collecting the text of the remaining document
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are HTML elements removed before text collection.
// These contribute no meaningful content to the extracted page.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"img", "picture", "figure", "figcaption",
	"svg", "canvas",
}

// TextTransformer reduces an HTML page fragment to its plain text.
type TextTransformer struct{}

// New creates a TextTransformer.
func New() *TextTransformer {
	return &TextTransformer{}
}

// Transform takes an HTML fragment and returns its visible text with
// normalized whitespace.
func (t *TextTransformer) Transform(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// Block-level elements become separate lines so headings and
	// paragraphs don't run together.
	var lines []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, td, th, pre, blockquote").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}
