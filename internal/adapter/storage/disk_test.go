package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadWritesFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir, "http://localhost:8080/media/")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), "creatives/a1.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/creatives/a1.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "creatives", "a1.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestUploadRejectsTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), "http://localhost:8080/media")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), "../outside.png", []byte("x"), "image/png")
	assert.Error(t, err)

	_, err = store.Upload(context.Background(), "/etc/passwd", []byte("x"), "image/png")
	assert.Error(t, err)
}

func TestNewDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "media")
	store, err := NewDiskStore(dir, "http://localhost")
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
