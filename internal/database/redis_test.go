package database

import (
	"context"
	"testing"

	"github.com/pageza/calorie-craft/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptions(t *testing.T) {
	t.Run("host settings", func(t *testing.T) {
		opts, err := redisOptions(&config.Config{
			RedisHost:     "redis",
			RedisPort:     "6380",
			RedisPassword: "secret",
			RedisDB:       2,
		})
		require.NoError(t, err)
		assert.Equal(t, "redis:6380", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 2, opts.DB)
	})

	t.Run("url wins", func(t *testing.T) {
		opts, err := redisOptions(&config.Config{
			RedisURL:  "redis://:pw@cache.internal:6379/3",
			RedisHost: "ignored",
			RedisPort: "1",
		})
		require.NoError(t, err)
		assert.Equal(t, "cache.internal:6379", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Equal(t, 3, opts.DB)
	})

	t.Run("bad url", func(t *testing.T) {
		_, err := redisOptions(&config.Config{RedisURL: "http://nope"})
		assert.Error(t, err)
	})
}

func TestNewRedisClientUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedisClient(ctx, &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"})
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
