// Package tree models the structured JSON output of the conversion engine
// and flattens it into records. The engine nests child nodes under several
// field names depending on the node kind (generic kids, table rows, table
// cells, list items); a single accessor hides that so every traversal treats
// them identically.
package tree

import (
	"encoding/json"
	"fmt"
)

// Node is one element of the engine's JSON document tree.
type Node struct {
	Content   string `json:"content"`
	Page      *int   `json:"page number"`
	Type      string `json:"type"`
	Kids      []Node `json:"kids"`
	Rows      []Node `json:"rows"`
	Cells     []Node `json:"cells"`
	ListItems []Node `json:"list items"`
}

// Root is the top level of an engine JSON document.
type Root struct {
	FileName      string `json:"file name"`
	NumberOfPages int    `json:"number of pages"`
	Kids          []Node `json:"kids"`
}

// children returns the node's nested nodes in document order, regardless of
// which semantic field introduced the nesting.
func (n *Node) children() []Node {
	if len(n.Rows) == 0 && len(n.Cells) == 0 && len(n.ListItems) == 0 {
		return n.Kids
	}
	kids := make([]Node, 0, len(n.Kids)+len(n.Rows)+len(n.Cells)+len(n.ListItems))
	kids = append(kids, n.Kids...)
	kids = append(kids, n.Rows...)
	kids = append(kids, n.Cells...)
	kids = append(kids, n.ListItems...)
	return kids
}

// pageOrDefault returns the node's declared page number, defaulting to 1
// when absent.
func (n *Node) pageOrDefault() int {
	if n.Page == nil {
		return 1
	}
	return *n.Page
}

// Parse decodes raw engine output into a document tree.
func Parse(raw []byte) (*Root, error) {
	var root Root
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("parsing structured output: %w", err)
	}
	return &root, nil
}
