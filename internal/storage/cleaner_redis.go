package storage

import (
	"context"
	"fmt"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var _ CleanerQueue = (*RedisCleanerQueue)(nil)

// RedisCleanerQueue pushes cleaner tasks onto a Redis list consumed by
// the cleaning workflow. This side only ever enqueues.
type RedisCleanerQueue struct {
	client *redis.Client
	key    string
}

func NewRedisCleanerQueue(client *redis.Client, key string) *RedisCleanerQueue {
	return &RedisCleanerQueue{
		client: client,
		key:    key,
	}
}

func (q *RedisCleanerQueue) Enqueue(ctx context.Context, task CleanerTask) error {
	data, err := go_json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal cleaner task: %w", err)
	}

	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		return fmt.Errorf("enqueue cleaner task: %w", err)
	}

	return nil
}

func (q *RedisCleanerQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}
