// Package core defines the pipeline interfaces for PDFPipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import "context"

// Format identifies the output encoding requested from the conversion engine.
type Format string

// Supported output formats.
const (
	FormatJSON     Format = "json"
	FormatText     Format = "text"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Extension returns the file extension the engine uses for this format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatHTML:
		return ".html"
	case FormatMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// Record is one unit of extracted text with attached metadata.
// Page 0 means no page association; an empty NodeType means the record
// is not node-scoped.
type Record struct {
	Content  string `json:"content"`
	Source   string `json:"source"`
	Format   Format `json:"format,omitempty"`
	Page     int    `json:"page,omitempty"`
	NodeType string `json:"type,omitempty"`
}

// ConvertOptions is the full option surface passed to the conversion engine.
// Zero values mean "engine default"; nothing here is inferred implicitly.
type ConvertOptions struct {
	Format                Format
	Quiet                 bool
	ContentSafetyOff      []string // subset of {all, hidden-text, off-page, tiny, hidden-ocg}
	Password              string
	KeepLineBreaks        bool
	ReplaceInvalidChars   string
	UseStructTree         bool
	TableMethod           string // "" (border-based default) or "cluster"
	ReadingOrder          string // "" (default), "off" or "xycut"
	TextPageSeparator     string
	MarkdownPageSeparator string
	HTMLPageSeparator     string
	ImageOutput           string // "" (default), "off", "embedded" or "external"
	ImageFormat           string // "" (default), "png" or "jpeg"
}

// Converter runs the external conversion engine for a set of input files,
// writing one output file per input (named <stem><ext>) into outputDir.
type Converter interface {
	Convert(ctx context.Context, inputs []string, opts ConvertOptions, outputDir string) error
}

// Transformer rewrites a record's content after extraction
// (e.g. HTML → plain text, HTML → Markdown).
type Transformer interface {
	Transform(content string) (string, error)
}

// Renderer converts the records extracted from one source into a final
// output document.
type Renderer interface {
	Render(source string, records []Record) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
