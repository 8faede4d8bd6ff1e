package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fittrack/backend/internal/types"
)

func redisForTest(t *testing.T) *redis.Client {
	t.Helper()
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		t.Skip("REDIS_HOST not set, skipping Redis test")
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not reachable: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisSearchSessionRoundTrip(t *testing.T) {
	store := NewRedisSearchSessionStore(redisForTest(t))
	ctx := context.Background()
	items := []types.FoodItem{{Name: "Apple", Calories: 52}}

	saved, err := store.Save(ctx, 7, "apple", items)
	require.NoError(t, err)

	loaded, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), loaded.UserID)
	assert.Equal(t, items, loaded.Items)

	ttl, err := store.redis.TTL(ctx, sessionKey(saved.ID)).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, SearchSessionTTL)
}

func TestRedisSearchSessionMissing(t *testing.T) {
	store := NewRedisSearchSessionStore(redisForTest(t))
	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrSearchSessionNotFound)
}

func TestWeatherServiceCachesInRedis(t *testing.T) {
	client := redisForTest(t)
	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "weather:temp:reykjavik", "3.5", 0).Err())
	t.Cleanup(func() { client.Del(ctx, "weather:temp:reykjavik") })

	// The unreachable URL proves the value came from the cache.
	svc := NewWeatherService("key", "http://127.0.0.1:1", 0, client)
	temp, err := svc.Temperature(ctx, "Reykjavik")
	require.NoError(t, err)
	assert.Equal(t, 3.5, temp)
}

func TestMemorySearchSessionExpires(t *testing.T) {
	store := NewMemorySearchSessionStore()
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	saved, err := store.Save(ctx, 3, "egg", []types.FoodItem{{Name: "Chicken egg", Calories: 155}})
	require.NoError(t, err)

	loaded, err := store.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "egg", loaded.Query)

	now = now.Add(SearchSessionTTL + time.Second)
	_, err = store.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrSearchSessionNotFound)
}
