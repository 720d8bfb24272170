package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("Markdown")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
	assert.Contains(t, err.Error(), `"xml"`)
	assert.Contains(t, err.Error(), "json, text, html, markdown")
}

func TestFormatExtension(t *testing.T) {
	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, ".txt", FormatText.Extension())
	assert.Equal(t, ".html", FormatHTML.Extension())
	assert.Equal(t, ".md", FormatMarkdown.Extension())
}
