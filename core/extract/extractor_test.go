package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformStripsMarkup(t *testing.T) {
	html := `
		<h1>Heading</h1>
		<p>First paragraph.</p>
		<script>ignore();</script>
		<ul><li>Item one</li><li>Item two</li></ul>`

	text, err := New().Transform(html)
	require.NoError(t, err)

	assert.Equal(t, "Heading\nFirst paragraph.\nItem one\nItem two", text)
}

func TestTransformTableCells(t *testing.T) {
	html := `<table><tr><td>Cell 1</td><td>Cell 2</td></tr></table>`

	text, err := New().Transform(html)
	require.NoError(t, err)
	assert.Equal(t, "Cell 1\nCell 2", text)
}

func TestTransformBareText(t *testing.T) {
	text, err := New().Transform("just words, no markup")
	require.NoError(t, err)
	assert.Equal(t, "just words, no markup", text)
}
