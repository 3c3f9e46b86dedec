package storage

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	store, err := New(t.TempDir(), "/media")
	require.NoError(t, err)

	path, url, err := store.Save("cv.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.True(t, strings.HasPrefix(url, "/media/"))
	assert.True(t, strings.HasSuffix(url, "_cv.pdf"))

	require.NoError(t, store.Remove(path))
	// Removing twice is not an error.
	require.NoError(t, store.Remove(path))
}

func TestSaveUniqueNames(t *testing.T) {
	store, err := New(t.TempDir(), "/media")
	require.NoError(t, err)

	p1, _, err := store.Save("cv.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	p2, _, err := store.Save("cv.pdf", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}
