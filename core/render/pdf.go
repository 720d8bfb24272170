// Package render — PDF renderer.
// Re-renders the extracted records into a clean PDF using gofpdf, starting a
// new PDF page whenever the source page number changes. Handles Markdown
// headings (variable font sizes), lists, and code blocks since the engine's
// markdown format is a common input here. Images are intentionally not
// rendered.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/pdfpipe/core"
)

// PDFRenderer renders extracted records as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the records into PDF bytes.
func (r *PDFRenderer) Render(source string, records []core.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Source header on the first page.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+source, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	lastPage := 0
	for _, rec := range records {
		if rec.Page > 0 && lastPage > 0 && rec.Page != lastPage {
			pdf.AddPage()
		}
		if rec.Page > 0 {
			lastPage = rec.Page
		}
		renderContent(pdf, rec.Content)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderContent writes one record's content line by line, interpreting
// lightweight Markdown structure.
func renderContent(pdf *gofpdf.Fpdf, content string) {
	lines := strings.Split(content, "\n")
	inCodeBlock := false

	for _, line := range lines {
		// Toggle code block state.
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		// Skip empty lines (add spacing instead).
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		// Headings.
		if strings.HasPrefix(line, "#") {
			level := 0
			for _, ch := range line {
				if ch == '#' {
					level++
				} else {
					break
				}
			}
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			renderHeading(pdf, text, level)
			continue
		}

		// List items.
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			pdf.SetFont("Helvetica", "", 10)
			text := "• " + strings.TrimSpace(trimmed[2:])
			pdf.MultiCell(0, 5, cleanInlineMarkdown(text), "", "L", false)
			continue
		}

		// Regular paragraph text.
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, cleanInlineMarkdown(line), "", "L", false)
	}
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, cleanInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	// Remove bold markers.
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	// Remove italic markers (but not inside words like don't).
	re := regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	text = re.ReplaceAllString(text, " $1 ")
	// Remove inline code markers.
	text = regexp.MustCompile("`([^`]+)`").ReplaceAllString(text, "$1")
	// Remove link syntax, keep text.
	text = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`).ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
