package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "page:"

// PageCacheRedis stores rendered pages as plain strings with a per-entry TTL.
// Redis handles expiry; Clear is for tests and manual flushes.
type PageCacheRedis struct {
	Client *redis.Client
}

func NewPageCacheRedis(client *redis.Client) *PageCacheRedis {
	return &PageCacheRedis{Client: client}
}

func (c *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.Client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (c *PageCacheRedis) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, keyPrefix+key, body, ttl).Err()
}

// Clear drops every cached page.
func (c *PageCacheRedis) Clear(ctx context.Context) error {
	iter := c.Client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
