package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformConvertsHeadings(t *testing.T) {
	md, err := New().Transform("<h2>Section</h2><p>Body text.</p>")
	require.NoError(t, err)

	assert.Contains(t, md, "## Section")
	assert.Contains(t, md, "Body text.")
}

func TestTransformConvertsEmphasis(t *testing.T) {
	md, err := New().Transform("<p>Some <strong>bold</strong> words</p>")
	require.NoError(t, err)
	assert.Contains(t, md, "**bold**")
}
