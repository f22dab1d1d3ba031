package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisClient{Client: client}
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	_, rc := setupRedis(t)
	ctx := context.Background()

	err := rc.Set(ctx, "k", "v", time.Minute)
	require.NoError(t, err)

	val, err := rc.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	err = rc.Delete(ctx, "k")
	require.NoError(t, err)

	_, err = rc.Get(ctx, "k")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_SetRespectsTTL(t *testing.T) {
	mr, rc := setupRedis(t)
	ctx := context.Background()

	err := rc.Set(ctx, "ttl-key", "v", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.TTL("ttl-key") > 0)

	mr.FastForward(11 * time.Minute)

	_, err = rc.Get(ctx, "ttl-key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_IncrExpire(t *testing.T) {
	mr, rc := setupRedis(t)
	ctx := context.Background()

	n, err := rc.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = rc.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	err = rc.Expire(ctx, "counter", time.Minute)
	require.NoError(t, err)
	assert.True(t, mr.TTL("counter") > 0)
}
