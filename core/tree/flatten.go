package tree

import (
	"strings"

	"github.com/gaurav-prasanna/pdfpipe/core"
)

// Flatten walks the tree depth-first in pre-order and emits one record per
// node whose content is non-empty after trimming. A node's content is never
// merged with its descendants': a node with both content and children yields
// a record for itself and separate records for each qualifying descendant.
func Flatten(root *Root, source string) []core.Record {
	var records []core.Record
	for i := range root.Kids {
		records = flattenNode(&root.Kids[i], source, records)
	}
	return records
}

func flattenNode(n *Node, source string, records []core.Record) []core.Record {
	if strings.TrimSpace(n.Content) != "" {
		rec := core.Record{
			Content:  n.Content,
			Source:   source,
			NodeType: n.Type,
		}
		if n.Page != nil {
			rec.Page = *n.Page
		}
		records = append(records, rec)
	}
	kids := n.children()
	for i := range kids {
		records = flattenNode(&kids[i], source, records)
	}
	return records
}
