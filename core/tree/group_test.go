package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPagesBasic(t *testing.T) {
	root := &Root{Kids: []Node{
		{Type: "paragraph", Page: page(1), Content: "Page 1 text"},
		{Type: "heading", Page: page(1), Content: "Page 1 heading"},
		{Type: "paragraph", Page: page(2), Content: "Page 2 text"},
		{Type: "paragraph", Page: page(3), Content: "Page 3 text"},
	}}

	records := GroupPages(root, "test.pdf")
	require.Len(t, records, 3)

	assert.Equal(t, 1, records[0].Page)
	assert.Equal(t, "Page 1 text\nPage 1 heading", records[0].Content)
	assert.Equal(t, "test.pdf", records[0].Source)

	assert.Equal(t, 2, records[1].Page)
	assert.Equal(t, "Page 2 text", records[1].Content)

	assert.Equal(t, 3, records[2].Page)
	assert.Equal(t, "Page 3 text", records[2].Content)
}

func TestGroupPagesAscendingOrderFromUnsortedInput(t *testing.T) {
	root := &Root{Kids: []Node{
		{Page: page(4), Content: "fourth"},
		{Page: page(1), Content: "first"},
		{Page: page(4), Content: "fourth again"},
		{Page: page(2), Content: "second"},
	}}

	records := GroupPages(root, "test.pdf")
	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].Page)
	assert.Equal(t, 2, records[1].Page)
	assert.Equal(t, 4, records[2].Page)
	// Sibling order within a page is the original document order.
	assert.Equal(t, "fourth\nfourth again", records[2].Content)
}

func TestGroupPagesDefaultsMissingPageToOne(t *testing.T) {
	root := &Root{Kids: []Node{
		{Content: "no page field"},
		{Page: page(1), Content: "explicit page one"},
	}}

	records := GroupPages(root, "test.pdf")
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Page)
	assert.Equal(t, "no page field\nexplicit page one", records[0].Content)
}

func TestGroupPagesSkipsEmptyPages(t *testing.T) {
	root := &Root{Kids: []Node{
		{Page: page(1), Content: "real content"},
		{Page: page(2), Content: "   "},
		{Page: page(3)},
	}}

	records := GroupPages(root, "test.pdf")
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].Page)
}

func TestGroupPagesNestedTable(t *testing.T) {
	root := &Root{Kids: []Node{
		{Type: "paragraph", Page: page(1), Content: "Intro text"},
		{
			Type: "table", Page: page(1),
			Rows: []Node{
				{Type: "table row", Cells: []Node{
					{Kids: []Node{{Content: "Cell 1"}}},
					{Kids: []Node{{Content: "Cell 2"}}},
				}},
			},
		},
		{Type: "paragraph", Page: page(2), Content: "Page 2 text"},
	}}

	records := GroupPages(root, "test.pdf")
	require.Len(t, records, 2)

	assert.Equal(t, "Intro text\nCell 1\nCell 2", records[0].Content)
	assert.Equal(t, "Page 2 text", records[1].Content)
}

func TestGroupPagesListItems(t *testing.T) {
	root := &Root{Kids: []Node{
		{
			Type: "list", Page: page(1),
			ListItems: []Node{
				{Content: "Item 1"},
				{Content: "Item 2"},
				{Content: "Item 3"},
			},
		},
	}}

	records := GroupPages(root, "test.pdf")
	require.Len(t, records, 1)
	assert.Equal(t, "Item 1\nItem 2\nItem 3", records[0].Content)
}

// Every top-level node with extractable text lands on exactly one page,
// none dropped, none duplicated.
func TestGroupPagesCompleteness(t *testing.T) {
	root := &Root{Kids: []Node{
		{Page: page(2), Content: "a"},
		{Page: page(1), Content: "b"},
		{Page: page(2), Content: "c"},
		{Page: page(5), Content: "d"},
		{Page: page(1), Content: "   "}, // contributes nothing
	}}

	records := GroupPages(root, "test.pdf")

	total := 0
	for _, rec := range records {
		total += len(strings.Split(rec.Content, "\n"))
	}
	assert.Equal(t, 4, total)
}

func TestExtractTextOwnContentBeforeChildren(t *testing.T) {
	n := &Node{
		Content: "parent",
		Kids:    []Node{{Content: "child"}},
	}
	assert.Equal(t, "parent\nchild", ExtractText(n))
}
