package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "blogs")

	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	location, err := store.Save(context.Background(), "blog-1-1.jpeg", []byte("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/blog-1-1.jpeg", location)

	written, err := os.ReadFile(filepath.Join(dir, "blog-1-1.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), written)
}

func TestNewLocalStoreCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	_, err := NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
