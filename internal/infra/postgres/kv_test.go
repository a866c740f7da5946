package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/knowledge-vault-bot/internal/infra/kv"
)

// Set TEST_DATABASE_URL to run against a real server.
func openTestStore(t *testing.T) *KVStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, dsn, PoolConfig{MaxConns: 2})
	require.NoError(t, err)

	store, err := NewKVStore(ctx, pool)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestKVStore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	prefix := "test:" + time.Now().Format("150405.000000") + ":"

	_, err := store.Get(ctx, prefix+"missing")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.SetMany(ctx, map[string][]byte{
		prefix + "a": []byte(`1`),
		prefix + "b": []byte(`2`),
	}))
	require.NoError(t, store.Set(ctx, prefix+"a", []byte(`3`)))

	v, err := store.Get(ctx, prefix+"a")
	require.NoError(t, err)
	assert.Equal(t, `3`, string(v))

	require.NoError(t, store.Delete(ctx, prefix+"a"))
	_, err = store.Get(ctx, prefix+"a")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.DeletePrefix(ctx, prefix))
	_, err = store.Get(ctx, prefix+"b")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
