package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDerivesNameFromSourceStem(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("reports/Q3 Summary.pdf", []byte("data"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Q3_Summary.json"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestNewCreatesOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStem(t *testing.T) {
	assert.Equal(t, "doc", Stem("doc.pdf"))
	assert.Equal(t, "a_b", Stem("/x/y/a b.pdf"))
	assert.Equal(t, "notes_2024", Stem("notes 2024.PDF"))
	assert.Equal(t, "output", Stem(".pdf"))
}
