package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	id := uuid.New()
	key, err := store.Upload(context.Background(), id, "brief.txt", strings.NewReader("brief content"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, id.String()[:2]+"/"))
	assert.Contains(t, key, id.String())

	reader, err := store.Download(context.Background(), key)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "brief content", string(data))
}

func TestLocalStorageSanitizesFilename(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, err := store.Upload(context.Background(), uuid.New(), "my brief/v2.txt", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Contains(t, key, "my_brief_v2.txt")
}

func TestLocalStorageDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	key, err := store.Upload(context.Background(), uuid.New(), "doc.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), key))

	_, err = store.Download(context.Background(), key)
	assert.Error(t, err)

	// Deleting an already-removed key is fine
	assert.NoError(t, store.Delete(context.Background(), key))
}
