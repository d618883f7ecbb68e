package events

import (
	"encoding/json"
	"eventsite/models"
	"eventsite/modules/locale"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	"time"
)

const cacheKeyPrefix = "eventsite:upcoming:"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(lang locale.Locale) string {
	return cacheKeyPrefix + string(lang)
}

func (c *RedisCache) Get(lang locale.Locale) (*models.Event, error) {
	b, err := c.client.Get(cacheKey(lang)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}
	ev := &models.Event{}
	if err := json.Unmarshal(b, ev); err != nil {
		return nil, errors.Wrap(err, "decode cached event")
	}
	return ev, nil
}

func (c *RedisCache) Set(lang locale.Locale, ev *models.Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	return errors.Wrap(c.client.Set(cacheKey(lang), b, c.ttl).Err(), "redis set")
}

func (c *RedisCache) Delete(lang locale.Locale) error {
	return errors.Wrap(c.client.Del(cacheKey(lang)).Err(), "redis del")
}
