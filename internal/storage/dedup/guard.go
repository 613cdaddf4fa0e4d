package dedup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "award:"

// Guard suppresses repeat point awards for the same reference key.
// Acquire reports true when the key was not seen before; a zero ttl claims
// the key without expiry. Release returns a claimed key so the event can be
// retried after a failed award.
type Guard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type guardClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisGuard backs the guard with Redis SETNX so multiple instances
// share one dedup window.
type RedisGuard struct {
	client guardClient
	logger *slog.Logger
}

func NewRedisGuard(client guardClient, logger *slog.Logger) *RedisGuard {
	return &RedisGuard{client: client, logger: logger}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := g.client.SetNX(ctx, keyPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedup acquire: %w", err)
	}
	return acquired, nil
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		g.logger.Warn("dedup release failed", slog.String("key", key), slog.String("error", err.Error()))
		return fmt.Errorf("dedup release: %w", err)
	}
	return nil
}

// NoopGuard is used when no Redis address is configured. Every acquire
// succeeds, so awards rely on database level protections only.
type NoopGuard struct{}

func (NoopGuard) Acquire(context.Context, string, time.Duration) (bool, error) {
	return true, nil
}

func (NoopGuard) Release(context.Context, string) error {
	return nil
}
