// Package discover finds PDF inputs under directory roots.
// It performs a breadth-first scan with deduplication, keeping discovery
// logic separate from the extraction pipeline.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// PDFs returns all PDF files under the given roots in breadth-first order.
// A root that is itself a PDF file is included directly. Hidden entries are
// skipped; unreadable directories are skipped rather than aborting the scan.
func PDFs(roots ...string) ([]string, error) {
	dirs := NewQueue()
	seen := NewQueue()

	for _, root := range roots {
		path := NormalizePath(root)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if info.IsDir() {
			dirs.Add(path)
			continue
		}
		if IsPDF(path) {
			seen.Add(path)
		}
	}

	for dirs.HasNext() {
		dir := dirs.Next()

		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // Skip unreadable directories, don't block the scan.
		}

		var files []string
		for _, entry := range entries {
			if IsHidden(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				dirs.Add(NormalizePath(path))
				continue
			}
			if IsPDF(path) {
				files = append(files, NormalizePath(path))
			}
		}
		// ReadDir order is lexical already, but normalization can reorder.
		sort.Strings(files)
		for _, f := range files {
			seen.Add(f)
		}
	}

	return seen.All(), nil
}
