package bootstrap

import (
	"context"
	"log/slog"

	"field-booking/internal/infra/cache"
	"field-booking/internal/pkg/config"
	"field-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewFieldCache,
	),
)

func NewFieldCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.FieldCache, error) {
	rdb, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if rdb == nil {
		logger.Info("REDIS_ADDR not set, field listings are not cached")
		return cache.NewFieldCache(nil, cfg.Redis), nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return cache.NewFieldCache(rdb, cfg.Redis), nil
}
