package split

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sep instantiates the default template for a page number, the way the
// engine substitutes the placeholder.
func sep(page int) string {
	return strings.ReplaceAll(DefaultTemplate, Placeholder, strconv.Itoa(page))
}

func TestPagesRoundTrip(t *testing.T) {
	const n = 5
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(sep(i))
		}
		fmt.Fprintf(&b, "content of page %d", i)
	}

	pages := Pages(b.String(), DefaultTemplate)
	require.Len(t, pages, n)
	for i, page := range pages {
		assert.Equal(t, i+1, page.Number)
		assert.Equal(t, fmt.Sprintf("content of page %d", i+1), page.Text)
	}
}

func TestPagesNoSeparatorYieldsSinglePage(t *testing.T) {
	pages := Pages("  Single page content only \n", DefaultTemplate)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "Single page content only", pages[0].Text)
}

func TestPagesSkipsWhitespaceOnlySegments(t *testing.T) {
	content := "Page 1 content" + sep(2) + "   " + sep(3) + "Page 3 content"

	pages := Pages(content, DefaultTemplate)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Number)
	assert.Equal(t, "Page 1 content", pages[0].Text)
	assert.Equal(t, 3, pages[1].Number)
	assert.Equal(t, "Page 3 content", pages[1].Text)
}

func TestPagesEmptyContent(t *testing.T) {
	assert.Empty(t, Pages("", DefaultTemplate))
	assert.Empty(t, Pages("   \n\t ", DefaultTemplate))
}

func TestPagesPreservesOccurrenceOrder(t *testing.T) {
	// Out-of-order page numbers are format-level data, not something to
	// re-sort.
	content := "first" + sep(7) + "second" + sep(3) + "third"

	pages := Pages(content, DefaultTemplate)
	require.Len(t, pages, 3)
	assert.Equal(t, []int{1, 7, 3}, []int{pages[0].Number, pages[1].Number, pages[2].Number})
}

func TestPagesCustomTemplateWithMetacharacters(t *testing.T) {
	template := "*** Page %page-number% ***"
	content := "alpha" + "*** Page 2 ***" + "beta"

	pages := Pages(content, template)
	require.Len(t, pages, 2)
	assert.Equal(t, "alpha", pages[0].Text)
	assert.Equal(t, 2, pages[1].Number)
	assert.Equal(t, "beta", pages[1].Text)
}

func TestPagesWithoutPlaceholderNumbersSequentially(t *testing.T) {
	content := "one\n---\ntwo\n---\nthree"

	pages := Pages(content, "\n---\n")
	require.Len(t, pages, 3)
	for i, page := range pages {
		assert.Equal(t, i+1, page.Number)
	}
}

func TestPatternEscapesLiteralParts(t *testing.T) {
	re, numbered := Pattern("((%page-number%))")
	require.True(t, numbered)
	assert.True(t, re.MatchString("((12))"))
	assert.False(t, re.MatchString("12"))

	re, numbered = Pattern("<hr/>")
	require.False(t, numbered)
	assert.True(t, re.MatchString("a<hr/>b"))
}
