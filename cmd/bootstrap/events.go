package bootstrap

import (
	"context"
	"log/slog"

	"field-booking/internal/infra/events"
	"field-booking/internal/pkg/config"
	"field-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("AMQP_URL not set, booking events are only logged")
		return events.NewLogPublisher(logger), nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQP, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
