package bootstrap

import (
	"context"
	"log/slog"

	"transit-booking/internal/infra/messaging"
	"transit-booking/internal/pkg/config"
	"transit-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotificationPublisher,
	),
)

// NewNotificationPublisher falls back to logging notifications when no broker is configured.
func NewNotificationPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.NotificationPublisher, error) {
	if cfg.RabbitMQ.URL == "" {
		logger.Warn("RABBITMQ_URL not set; notifications will only be logged")
		return messaging.NewLogPublisher(logger), nil
	}

	publisher, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQ, logger)
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
