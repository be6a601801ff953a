package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
)

// exerciseKeyValueStore runs the behaviour every backend must share.
func exerciseKeyValueStore(t *testing.T, kv KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "fitiplus_token")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "fitiplus_token", "tok1"))
	require.NoError(t, kv.Set(ctx, "fitiplus_token", "tok2"))
	require.NoError(t, kv.Set(ctx, "fitiplus_user", `{"id":"1"}`))

	v, err := kv.Get(ctx, "fitiplus_token")
	require.NoError(t, err)
	assert.Equal(t, "tok2", v)

	require.NoError(t, kv.Delete(ctx, "fitiplus_token", "fitiplus_user", "never_set"))
	_, err = kv.Get(ctx, "fitiplus_user")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Delete(ctx))
}

func TestMemoryKeyValueStore(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	exerciseKeyValueStore(t, kv)
	assert.NoError(t, kv.Close())
}

func TestBadgerKeyValueStore_InMemory(t *testing.T) {
	kv, err := NewBadgerKeyValueStore("", logger.Nop())
	require.NoError(t, err)
	defer kv.Close()

	exerciseKeyValueStore(t, kv)
}

func TestBadgerKeyValueStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	kv, err := NewBadgerKeyValueStore(dir, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "fitiplus_token", "tok1"))
	require.NoError(t, kv.Close())

	kv, err = NewBadgerKeyValueStore(dir, logger.Nop())
	require.NoError(t, err)
	defer kv.Close()

	v, err := kv.Get(ctx, "fitiplus_token")
	require.NoError(t, err)
	assert.Equal(t, "tok1", v)
}

func TestNewKeyValueStore_SQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "client.db")

	kv, err := NewKeyValueStore(ctx, config.ClientStorage{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	exerciseKeyValueStore(t, kv)
	require.NoError(t, kv.Set(ctx, "fitiplus_refresh_token", "r1"))
	require.NoError(t, kv.Close())

	kv, err = NewKeyValueStore(ctx, config.ClientStorage{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer kv.Close()
	v, err := kv.Get(ctx, "fitiplus_refresh_token")
	require.NoError(t, err)
	assert.Equal(t, "r1", v)
}

func TestNewKeyValueStore_Drivers(t *testing.T) {
	ctx := context.Background()

	kv, err := NewKeyValueStore(ctx, config.ClientStorage{Driver: config.DriverMemory}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memoryKeyValueStore{}, kv)

	kv, err = NewKeyValueStore(ctx, config.ClientStorage{Driver: config.DriverBadger, Dir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &badgerKeyValueStore{}, kv)
	require.NoError(t, kv.Close())

	_, err = NewKeyValueStore(ctx, config.ClientStorage{Driver: "redis"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
