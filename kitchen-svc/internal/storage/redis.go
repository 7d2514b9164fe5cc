package storage

import (
	"context"
	"time"

	"fusion-kitchen/kitchen-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) IdempotencyKey(key string) string {
	return "kitchen:idempotency:orders:" + key
}

func DailyItemsKey(day string) string {
	return "kitchen:daily:" + day + ":items"
}

// Seen records the key and reports whether it was already present.
func (c *RedisCache) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := c.Client.SetNX(ctx, c.IdempotencyKey(key), "1", c.TTL).Result()
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (c *RedisCache) Forget(ctx context.Context, key string) error {
	return c.Client.Del(ctx, c.IdempotencyKey(key)).Err()
}

func (c *RedisCache) TopItems(ctx context.Context, day string, limit int) ([]domain.PopularItem, error) {
	members, err := c.Client.ZRevRangeWithScores(ctx, DailyItemsKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.PopularItem, 0, len(members))
	for _, m := range members {
		id, _ := m.Member.(string)
		items = append(items, domain.PopularItem{MenuItemID: domain.UUID(id), Qty: m.Score})
	}
	return items, nil
}
