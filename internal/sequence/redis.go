package sequence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "erp:seq:"

// RedisAllocator hands out values with an atomic INCR per scope. The first call in a
// scope seeds the counter from the highest stored number with SETNX.
type RedisAllocator struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisAllocator creates a redis backed allocator
func NewRedisAllocator(client redis.UniversalClient) *RedisAllocator {
	return &RedisAllocator{client: client, prefix: defaultKeyPrefix}
}

// Next increments and returns the scope's counter
func (a *RedisAllocator) Next(ctx context.Context, scope string, last LastFunc) (int64, error) {
	key := a.prefix + scope

	exists, err := a.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check sequence %s: %w", scope, err)
	}
	if exists == 0 {
		n, err := last(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to read last sequence of %s: %w", scope, err)
		}
		// losers of a concurrent seed keep the winner's value
		if err := a.client.SetNX(ctx, key, n, 0).Err(); err != nil {
			return 0, fmt.Errorf("failed to seed sequence %s: %w", scope, err)
		}
	}

	seq, err := a.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence %s: %w", scope, err)
	}
	return seq, nil
}

// Reset drops the counter of a scope so the next call reseeds from the stored numbers
func (a *RedisAllocator) Reset(ctx context.Context, scope string) error {
	return a.client.Del(ctx, a.prefix+scope).Err()
}

// NewRedisClient connects to redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: 20,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}
