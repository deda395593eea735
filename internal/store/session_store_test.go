package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsarbalaji/storefront-client/internal/store"
	"github.com/pulsarbalaji/storefront-client/pkg/constant"
)

func TestFileStore_SetGetClear(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewFileStore(dir)
	require.NoError(t, err)

	_, ok := s.Get(constant.StorageKeyAccess)
	assert.False(t, ok)

	require.NoError(t, s.Set(constant.StorageKeyAccess, "token-a"))
	require.NoError(t, s.Set(constant.StorageKeyRefresh, "token-r"))
	require.NoError(t, s.Set(constant.StorageKeyUser, `{"id":1}`))

	value, ok := s.Get(constant.StorageKeyAccess)
	assert.True(t, ok)
	assert.Equal(t, "token-a", value)

	require.NoError(t, s.Clear())

	_, ok = s.Get(constant.StorageKeyAccess)
	assert.False(t, ok)
	_, ok = s.Get(constant.StorageKeyRefresh)
	assert.False(t, ok)
}

func TestFileStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(constant.StorageKeyRefresh, "token-r"))

	reopened, err := store.NewFileStore(dir)
	require.NoError(t, err)

	value, ok := reopened.Get(constant.StorageKeyRefresh)
	assert.True(t, ok)
	assert.Equal(t, "token-r", value)
}

func TestFileStore_CorruptedFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewFileStore(dir)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, constant.SessionFileName), []byte("not json"), 0600)
	require.NoError(t, err)

	_, ok := s.Get(constant.StorageKeyAccess)
	assert.False(t, ok)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewFileStore(dir)
	require.NoError(t, err)

	assert.NoError(t, s.Clear())
	assert.NoError(t, s.Clear())
}

func TestMemoryStore(t *testing.T) {
	s := store.NewMemoryStore()

	require.NoError(t, s.Set("key", "value"))

	value, ok := s.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	require.NoError(t, s.Clear())

	_, ok = s.Get("key")
	assert.False(t, ok)
}
