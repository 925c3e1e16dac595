package storage

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"alufactory/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*fsDocumentStore, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{Storage: &config.StorageConfig{UploadDir: dir}}
	store := NewDocumentStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return store.(*fsDocumentStore), dir
}

func TestDocumentStore_SaveAndLoad(t *testing.T) {
	store, dir := newTestStore(t)

	path, err := store.Save("user-1", "design.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, "user-1_design.pdf", path)

	// The file lands under the upload directory.
	_, err = os.Stat(filepath.Join(dir, path))
	require.NoError(t, err)

	data, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 test"), data)
}

func TestDocumentStore_SaveSanitizesFilename(t *testing.T) {
	store, dir := newTestStore(t)

	path, err := store.Save("user-1", "../../escape.pdf", []byte("data"))
	require.NoError(t, err)

	// The stored file stays inside the upload directory.
	_, err = os.Stat(filepath.Join(dir, path))
	require.NoError(t, err)
	assert.NotContains(t, path, "/")
}

func TestDocumentStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load("nope.pdf")
	assert.Error(t, err)
}

func TestDocumentStore_RemoveMissingIsNoError(t *testing.T) {
	store, _ := newTestStore(t)

	assert.NoError(t, store.Remove("nope.pdf"))
}

func TestDocumentStore_Remove(t *testing.T) {
	store, dir := newTestStore(t)

	path, err := store.Save("user-1", "design.pdf", []byte("data"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))

	_, err = os.Stat(filepath.Join(dir, path))
	assert.True(t, os.IsNotExist(err))
}
