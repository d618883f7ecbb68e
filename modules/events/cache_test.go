package events

import (
	"eventsite/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCache(client, time.Minute), mr, func() {
		_ = client.Close()
		mr.Close()
	}
}

func TestRedisCacheMiss(t *testing.T) {
	cache, _, done := newTestCache(t)
	defer done()

	ev, err := cache.Get("hu")
	assert.NoError(t, err)
	assert.Nil(t, ev)
}

func TestRedisCacheSetGet(t *testing.T) {
	cache, mr, done := newTestCache(t)
	defer done()

	starts := time.Date(2026, 11, 7, 18, 0, 0, 0, time.UTC)
	require.NoError(t, cache.Set("hu", &models.Event{Slug: "autumn-meetup", Lang: "hu", Title: "Őszi találkozó", StartsAt: starts}))
	assert.True(t, mr.Exists(cacheKeyPrefix+"hu"))
	assert.Equal(t, time.Minute, mr.TTL(cacheKeyPrefix+"hu"))

	ev, err := cache.Get("hu")
	require.NoError(t, err)
	require.NotNil(t, ev)
	assert.Equal(t, "autumn-meetup", ev.Slug)
	assert.Equal(t, "Őszi találkozó", ev.Title)
	assert.True(t, starts.Equal(ev.StartsAt))

	mr.FastForward(2 * time.Minute)
	ev, err = cache.Get("hu")
	assert.NoError(t, err)
	assert.Nil(t, ev)
}

func TestRedisCacheDelete(t *testing.T) {
	cache, mr, done := newTestCache(t)
	defer done()

	require.NoError(t, cache.Set("en", &models.Event{Slug: "spring-gala", Lang: "en"}))
	require.NoError(t, cache.Delete("en"))
	assert.False(t, mr.Exists(cacheKeyPrefix+"en"))
	require.NoError(t, cache.Delete("en"))
}

func TestRedisCacheCorruptEntry(t *testing.T) {
	cache, mr, done := newTestCache(t)
	defer done()

	require.NoError(t, mr.Set(cacheKeyPrefix+"hu", "{not json"))
	_, err := cache.Get("hu")
	assert.Error(t, err)
}

func TestRedisCacheUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	cache := NewRedisCache(client, time.Minute)
	mr.Close()

	_, err = cache.Get("hu")
	assert.Error(t, err)
	assert.Error(t, cache.Set("hu", &models.Event{Slug: "x"}))
}
