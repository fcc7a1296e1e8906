package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/barberiapp/admin-cli/internal/errors"
	"github.com/barberiapp/admin-cli/session/storage"
)

// backendContract exercises the behavior every backend must share.
func backendContract(t *testing.T, backend storage.Backend) {
	t.Helper()

	_, err := backend.Get(storage.KeyToken)
	require.ErrorIs(t, err, errors.ErrNotFound)

	require.NoError(t, backend.Set(storage.KeyToken, "abc"))
	value, err := backend.Get(storage.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "abc", value)

	require.NoError(t, backend.Set(storage.KeyToken, "def"))
	value, err = backend.Get(storage.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "def", value)

	require.NoError(t, backend.Delete(storage.KeyToken))
	_, err = backend.Get(storage.KeyToken)
	require.ErrorIs(t, err, errors.ErrNotFound)

	// Deleting an absent key is a no-op.
	require.NoError(t, backend.Delete(storage.KeyToken))
}

func TestMemoryBackend(t *testing.T) {
	backendContract(t, storage.NewMemoryBackend())
}

func TestFileBackend(t *testing.T) {
	backend, err := storage.NewFileBackend(t.TempDir())
	require.NoError(t, err)
	backendContract(t, backend)
}

func TestFileBackendPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(storage.KeyUser, `{"id":1}`))

	second, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	value, err := second.Get(storage.KeyUser)
	require.NoError(t, err)
	require.Equal(t, `{"id":1}`, value)
}

func TestFileBackendFilePermissions(t *testing.T) {
	dir := t.TempDir()
	backend, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, backend.Set(storage.KeyToken, "secret"))

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileBackendCorruptFileReadsAsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("not json"), 0o600))

	backend, err := storage.NewFileBackend(dir)
	require.NoError(t, err)
	_, err = backend.Get(storage.KeyToken)
	require.ErrorIs(t, err, errors.ErrNotFound)
}

func TestRedisBackend(t *testing.T) {
	server := miniredis.RunT(t)
	backend := storage.NewRedisBackendWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}))
	defer backend.Close()

	backendContract(t, backend)
}

func TestRedisBackendKeysArePrefixed(t *testing.T) {
	server := miniredis.RunT(t)
	backend := storage.NewRedisBackendWithClient(redis.NewClient(&redis.Options{Addr: server.Addr()}))
	defer backend.Close()

	require.NoError(t, backend.Set(storage.KeyToken, "abc"))
	value, err := server.Get("barberiapp:session:" + storage.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "abc", value)
}
