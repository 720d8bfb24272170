// Package render provides output renderers for the PDFPipe pipeline.
// This file implements the JSON renderer, which serializes the extracted
// records for one source into a structured document.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/pdfpipe/core"
)

// sourceJSON is the complete JSON output for a single source file.
type sourceJSON struct {
	Source  string        `json:"source"`
	Records []core.Record `json:"records"`
}

// JSONRenderer produces structured JSON output from extracted records.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render serializes the records into indented JSON.
func (r *JSONRenderer) Render(source string, records []core.Record) ([]byte, error) {
	data, err := json.MarshalIndent(sourceJSON{Source: source, Records: records}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
