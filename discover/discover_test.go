package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestPDFsScansRecursively(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.pdf"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "sub", "b.PDF"))
	touch(t, filepath.Join(root, "sub", "deep", "c.pdf"))
	touch(t, filepath.Join(root, ".hidden", "d.pdf"))

	found, err := PDFs(root)
	require.NoError(t, err)
	require.Len(t, found, 3)

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = filepath.Base(f)
	}
	assert.Equal(t, []string{"a.pdf", "b.PDF", "c.pdf"}, names)
}

func TestPDFsAcceptsFileRoots(t *testing.T) {
	root := t.TempDir()
	pdf := filepath.Join(root, "single.pdf")
	touch(t, pdf)

	found, err := PDFs(pdf)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "single.pdf", filepath.Base(found[0]))
}

func TestPDFsDeduplicatesRoots(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.pdf"))

	found, err := PDFs(root, root)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestPDFsMissingRoot(t *testing.T) {
	_, err := PDFs(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestRules(t *testing.T) {
	assert.True(t, IsPDF("a.pdf"))
	assert.True(t, IsPDF("A.PDF"))
	assert.False(t, IsPDF("a.pdf.txt"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("docs"))
}

func TestQueueDedupes(t *testing.T) {
	q := NewQueue()
	q.Add("a")
	q.Add("b")
	q.Add("a")

	assert.Equal(t, 2, q.Visited())
	assert.Equal(t, []string{"a", "b"}, q.All())

	require.True(t, q.HasNext())
	assert.Equal(t, "a", q.Next())
	assert.Equal(t, "b", q.Next())
	assert.False(t, q.HasNext())
}
