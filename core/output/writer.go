// Package output handles file naming and writing for PDFPipe outputs.
// Output filenames are derived from the input file's stem
// (e.g. reports/q3 summary.pdf → q3_summary.json).
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores rendered output for one source file.
// Filename: sanitized source stem plus the renderer extension.
func (w *Writer) Write(source string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, Stem(source)+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Stem converts a source path into a flat, filesystem-safe base name.
// Example: reports/Q3 Summary.pdf → Q3_Summary
func Stem(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = "output"
	}
	return sanitize(base)
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
