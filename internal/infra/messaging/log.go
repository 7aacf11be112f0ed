package messaging

import (
	"context"
	"log/slog"

	"transit-booking/internal/usecase/shared"
)

// LogPublisher stands in for the broker when none is configured; jobs are logged and treated as delivered.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, job shared.NotificationJob) error {
	p.logger.Info("notification",
		"job_id", job.ID,
		"kind", job.Kind,
		"topic", job.Topic,
		"payload", string(job.Payload))
	return nil
}
