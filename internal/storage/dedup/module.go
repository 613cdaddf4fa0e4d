package dedup

import (
	"context"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"

	"github.com/Parallaxx203/audifyx-backend/internal/config"
)

// Module provides the award dedup guard. With a Redis address configured
// the guard is shared across instances, otherwise it degrades to a noop.
var Module = fx.Options(
	fx.Provide(newGuard),
)

type guardParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

func newGuard(p guardParams) Guard {
	if p.Config.RedisAddr == "" {
		p.Logger.Warn("redis address not set, award dedup disabled")
		return NoopGuard{}
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddr})
	p.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return NewRedisGuard(client, p.Logger)
}
