// internal/storage/local_test.go
package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveOpenDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), nil)
	require.NoError(t, err)
	ctx := context.Background()
	data := []byte("fake png data")

	key, size, err := store.Save(ctx, "property", "image/png", bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "property_"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, int64(len(data)), size)

	rc, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, key))
	_, _, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, store.Delete(ctx, key), ErrFileNotFound)
}

func TestLocalStore_RejectsUnsupportedType(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, _, err = store.Save(context.Background(), "owner", "image/gif", strings.NewReader("GIF89a"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, store.Delete(context.Background(), "../secret.jpg"), ErrInvalidKey)
}
