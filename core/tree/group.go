package tree

import (
	"slices"
	"strings"

	"github.com/gaurav-prasanna/pdfpipe/core"
)

// GroupPages partitions the top-level nodes by page number (default 1 when
// absent) and emits one record per page in ascending page order, preserving
// the original sibling order within each page. Each node contributes its
// recursively extracted text; pages whose joined text is empty after
// trimming are skipped. Page numbers are taken verbatim, so gaps are legal
// (e.g. an all-image page with no extracted text).
func GroupPages(root *Root, source string) []core.Record {
	grouped := make(map[int][]string)
	for i := range root.Kids {
		node := &root.Kids[i]
		page := node.pageOrDefault()
		if text := ExtractText(node); text != "" {
			grouped[page] = append(grouped[page], text)
		}
	}

	pages := make([]int, 0, len(grouped))
	for page := range grouped {
		pages = append(pages, page)
	}
	slices.Sort(pages)

	var records []core.Record
	for _, page := range pages {
		content := strings.TrimSpace(strings.Join(grouped[page], "\n"))
		if content == "" {
			continue
		}
		records = append(records, core.Record{
			Content: content,
			Source:  source,
			Page:    page,
		})
	}
	return records
}

// ExtractText returns a node's text: its own content (if non-empty after
// trimming) followed by each child's extracted text, joined by newlines.
// Children under kids, rows, cells, and list items are all treated alike.
func ExtractText(n *Node) string {
	var parts []string
	if strings.TrimSpace(n.Content) != "" {
		parts = append(parts, n.Content)
	}
	kids := n.children()
	for i := range kids {
		if text := ExtractText(&kids[i]); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
