// Package render — Markdown renderer.
// Joins the extracted records into one Markdown document, with a page
// heading in front of each page-scoped record.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pdfpipe/core"
)

// MarkdownRenderer writes records as a single Markdown document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render concatenates record contents, labeling page boundaries.
func (r *MarkdownRenderer) Render(source string, records []core.Record) ([]byte, error) {
	var b strings.Builder
	lastPage := 0
	for _, rec := range records {
		if rec.Page > 0 && rec.Page != lastPage {
			fmt.Fprintf(&b, "## Page %d\n\n", rec.Page)
			lastPage = rec.Page
		}
		b.WriteString(rec.Content)
		b.WriteString("\n\n")
	}
	return []byte(strings.TrimSpace(b.String()) + "\n"), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
