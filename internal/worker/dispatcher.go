package worker

import (
	"context"
	"log/slog"
	"time"

	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/pkg/config"
	"transit-booking/internal/pkg/retry"
	"transit-booking/internal/usecase/shared"
)

const (
	leaseDuration    = time.Minute
	maxRetryInterval = 10 * time.Minute
	publishTimeout   = 10 * time.Second
)

// OutboxDispatcher delivers queued notification jobs at least once.
// A publish failure never touches the booking that produced the job.
type OutboxDispatcher struct {
	uow       shared.UnitOfWork
	publisher shared.NotificationPublisher
	signal    *Signal
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger
}

func NewOutboxDispatcher(
	uow shared.UnitOfWork,
	publisher shared.NotificationPublisher,
	signal *Signal,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *OutboxDispatcher {
	return &OutboxDispatcher{
		uow:       uow,
		publisher: publisher,
		signal:    signal,
		clock:     clk,
		cfg:       cfg.Outbox,
		logger:    logger,
	}
}

func (d *OutboxDispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		case <-d.signal.C():
		}

		// drain full batches before going back to sleep
		for {
			n, err := d.DispatchOnce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					d.logger.Warn("outbox dispatch failed", "error", err)
				}
				break
			}
			if n < int(d.cfg.BatchSize) {
				break
			}
		}
	}
}

// DispatchOnce claims one batch of due jobs and settles each of them. It returns the batch size.
func (d *OutboxDispatcher) DispatchOnce(ctx context.Context) (int, error) {
	now := d.clock.Now()

	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().ClaimDue(ctx, tx.DB(), now, now.Add(leaseDuration), d.cfg.BatchSize)
		return err
	})
	if err != nil {
		return 0, err
	}

	for _, job := range jobs {
		d.deliver(ctx, job)
	}
	return len(jobs), nil
}

func (d *OutboxDispatcher) deliver(ctx context.Context, job shared.NotificationJob) {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	pubErr := d.publisher.Publish(pubCtx, job)
	cancel()

	settle := func(fn func(ctx context.Context, tx shared.Tx) error) {
		// the lease covers a failed settle; the job simply becomes due again
		if err := d.uow.Within(context.WithoutCancel(ctx), fn); err != nil {
			d.logger.Warn("failed to settle notification job", "job_id", job.ID, "error", err)
		}
	}

	if pubErr == nil {
		settle(func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, shared.NotificationStatusSent, nil)
		})
		d.logger.Debug("notification published", "job_id", job.ID, "topic", job.Topic)
		return
	}

	lastError := pubErr.Error()
	// Attempts was bumped by the claim, so it already counts this try.
	if job.Attempts >= d.cfg.MaxAttempts {
		settle(func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), job.ID, shared.NotificationStatusFailed, &lastError)
		})
		d.logger.Error("notification dropped after max attempts",
			"job_id", job.ID,
			"topic", job.Topic,
			"attempts", job.Attempts,
			"error", pubErr)
		return
	}

	next := d.clock.Now().Add(retry.Capped(int(job.Attempts)-1, d.cfg.PollInterval, maxRetryInterval))
	settle(func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, next, lastError)
	})
	d.logger.Warn("notification publish failed; rescheduled",
		"job_id", job.ID,
		"topic", job.Topic,
		"attempts", job.Attempts,
		"next_run_at", next,
		"error", pubErr)
}
