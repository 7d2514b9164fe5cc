package storage

import (
	"context"
	"time"

	"fusion-kitchen/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const counterTTL = 7 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{
		rdb: rdb,
		ttl: counterTTL,
	}
}

func DailyItemsKey(day string) string {
	return "kitchen:daily:" + day + ":items"
}

func DailyOrdersKey(day string) string {
	return "kitchen:daily:" + day + ":orders"
}

// RecordOrderCreated adds each ordered quantity to the day's item leaderboard.
func (s *Store) RecordOrderCreated(ctx context.Context, day string, items []domain.EventItem) error {
	if len(items) == 0 {
		return nil
	}

	key := DailyItemsKey(day)
	pipe := s.rdb.TxPipeline()
	for _, item := range items {
		pipe.ZIncrBy(ctx, key, float64(item.Qty), item.MenuItemID)
	}
	pipe.HIncrBy(ctx, DailyOrdersKey(day), "created", 1)
	pipe.Expire(ctx, key, s.ttl)
	pipe.Expire(ctx, DailyOrdersKey(day), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) RecordOrderCompleted(ctx context.Context, day string) error {
	key := DailyOrdersKey(day)
	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, "completed", 1)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}
