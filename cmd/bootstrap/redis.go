package bootstrap

import (
	"context"

	"consultbook/internal/infra/cache"
	"consultbook/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		cache.NewSlotCache,
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.RedisConfig) *redis.Client {
	client := cache.NewRedisClient(cfg)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
