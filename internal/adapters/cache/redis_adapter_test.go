package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zatekoja/cpapmaskselector/internal/domain/providers"
	redisclient "github.com/zatekoja/cpapmaskselector/internal/infrastructure/clients/redis"
)

func newTestAdapter(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisAdapter(redisclient.NewClientFromRedis(rdb)), mr
}

func TestRedisAdapter_SetGet(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "recommendation:abc", []byte(`{"maskType":"NASAL_MASK"}`), time.Minute))

	value, err := adapter.Get(ctx, "recommendation:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"maskType":"NASAL_MASK"}`, string(value))
	assert.Equal(t, time.Minute, mr.TTL("recommendation:abc"))
}

func TestRedisAdapter_MissAndExpiry(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.Get(ctx, "missing")
	assert.ErrorIs(t, err, providers.ErrCacheMiss)

	require.NoError(t, adapter.Set(ctx, "short", []byte("v"), time.Second))
	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "short")
	assert.ErrorIs(t, err, providers.ErrCacheMiss)
}

func TestRedisAdapter_Delete(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, adapter.Set(ctx, "b", []byte("2"), 0))
	require.NoError(t, adapter.Delete(ctx, "a", "b"))
	require.NoError(t, adapter.Delete(ctx))

	assert.False(t, mr.Exists("a"))
	assert.False(t, mr.Exists("b"))
}

func TestRedisAdapter_DeleteByPrefix(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	ctx := context.Background()

	for _, key := range []string{"recommendation:1", "recommendation:2", "recommendation:3", "other:1"} {
		require.NoError(t, mr.Set(key, "x"))
	}

	removed, err := adapter.DeleteByPrefix(ctx, "recommendation:")
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.True(t, mr.Exists("other:1"))
}

func TestRedisAdapter_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()
	adapter := NewRedisAdapter(redisclient.NewClientFromRedis(rdb))
	mr.Close()

	_, err = adapter.Get(context.Background(), "any")
	require.Error(t, err)
	assert.NotErrorIs(t, err, providers.ErrCacheMiss)
}
