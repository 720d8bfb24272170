// Package discover — path filtering rules.
// Provides helpers to filter and normalize paths during input discovery.
package discover

import (
	"path/filepath"
	"strings"
)

// IsPDF checks if a path points to a PDF file by extension.
func IsPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// IsHidden checks if a directory entry name is hidden (dotfile).
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// NormalizePath resolves a path to its cleaned absolute form for
// deduplication. On resolution failure the cleaned input is returned.
func NormalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
