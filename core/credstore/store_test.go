package credstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krugerlabs/taskdash/core/credstore"
)

// storeConformance exercises the Store contract shared by all backends.
func storeConformance(t *testing.T, store credstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("get absent key", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "authToken", "header.payload.sig"))

		value, err := store.Get(ctx, "authToken")
		require.NoError(t, err)
		assert.Equal(t, "header.payload.sig", value)
	})

	t.Run("set replaces previous value", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "authToken", "first"))
		require.NoError(t, store.Set(ctx, "authToken", "second"))

		value, err := store.Get(ctx, "authToken")
		require.NoError(t, err)
		assert.Equal(t, "second", value)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "authToken", "value"))
		require.NoError(t, store.Delete(ctx, "authToken"))

		_, err := store.Get(ctx, "authToken")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})

	t.Run("delete absent key is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "never-existed"))
	})
}

func TestMemory(t *testing.T) {
	storeConformance(t, credstore.NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "credentials.json")
	storeConformance(t, credstore.NewFile(path))

	t.Run("values survive reopening", func(t *testing.T) {
		ctx := context.Background()

		first := credstore.NewFile(path)
		require.NoError(t, first.Set(ctx, "authToken", "persisted"))

		second := credstore.NewFile(path)
		value, err := second.Get(ctx, "authToken")
		require.NoError(t, err)
		assert.Equal(t, "persisted", value)
	})

	t.Run("corrupt file surfaces an error", func(t *testing.T) {
		corrupt := filepath.Join(t.TempDir(), "credentials.json")
		require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0o600))

		_, err := credstore.NewFile(corrupt).Get(context.Background(), "authToken")
		assert.Error(t, err)
	})
}

func TestRedis(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	storeConformance(t, credstore.NewRedis(client, "test:"))

	t.Run("keys carry the configured prefix", func(t *testing.T) {
		ctx := context.Background()
		store := credstore.NewRedis(client, "taskdash:")

		require.NoError(t, store.Set(ctx, "authToken", "value"))
		assert.True(t, srv.Exists("taskdash:authToken"))
	})
}

func TestConnectRedis(t *testing.T) {
	t.Run("connects and pings", func(t *testing.T) {
		srv := miniredis.RunT(t)

		store, err := credstore.ConnectRedis(context.Background(), credstore.RedisConfig{
			ConnectionURL: "redis://" + srv.Addr(),
			KeyPrefix:     "taskdash:",
		})
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })

		require.NoError(t, store.Set(context.Background(), "k", "v"))
	})

	t.Run("empty URL", func(t *testing.T) {
		_, err := credstore.ConnectRedis(context.Background(), credstore.RedisConfig{})
		assert.ErrorIs(t, err, credstore.ErrEmptyConnectionURL)
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := credstore.ConnectRedis(context.Background(), credstore.RedisConfig{
			ConnectionURL: "http://not-redis",
		})
		assert.Error(t, err)
	})
}
