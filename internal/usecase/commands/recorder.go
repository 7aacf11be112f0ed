package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"transit-booking/internal/pkg/config"

	"github.com/cenkalti/backoff/v4"
)

const (
	recorderQueueSize   = 256
	recorderMaxInterval = time.Minute
)

// BookingRecorder keeps retrying bookings that were paid for but not yet recorded.
// Retries stop only on success, on a terminal error, or at shutdown.
type BookingRecorder struct {
	finalizer BookingFinalizer
	interval  time.Duration
	logger    *slog.Logger
	queue     chan PendingBooking
	wg        sync.WaitGroup
}

func NewBookingRecorder(finalizer BookingFinalizer, cfg config.Config, logger *slog.Logger) *BookingRecorder {
	return &BookingRecorder{
		finalizer: finalizer,
		interval:  cfg.Booking.RecorderInterval,
		logger:    logger,
		queue:     make(chan PendingBooking, recorderQueueSize),
	}
}

// Enqueue never blocks; it reports false when the queue is full.
func (r *BookingRecorder) Enqueue(p PendingBooking) bool {
	select {
	case r.queue <- p:
		return true
	default:
		return false
	}
}

func (r *BookingRecorder) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			r.wg.Wait()
			r.drain()
			return
		case p := <-r.queue:
			r.wg.Add(1)
			go func() {
				defer r.wg.Done()
				r.record(ctx, p)
			}()
		}
	}
}

func (r *BookingRecorder) record(ctx context.Context, p PendingBooking) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.interval
	b.MaxInterval = recorderMaxInterval
	b.MaxElapsedTime = 0

	attempts := 0
	op := func() error {
		attempts++
		err := r.finalizer.Finalize(ctx, p)
		if err != nil && IsTerminalFinalizeError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		r.logger.Warn("booking record retry failed",
			"transaction_id", p.Booking.TransactionID(),
			"attempt", attempts,
			"next_retry_ms", wait.Milliseconds(),
			"error", err)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		r.logger.Error("booking recorder gave up",
			"alert", true,
			"transaction_id", p.Booking.TransactionID(),
			"payment_reference", p.Booking.PaymentRef(),
			"attempts", attempts,
			"error", err)
		return
	}

	r.logger.Info("delayed booking recorded",
		"transaction_id", p.Booking.TransactionID(),
		"attempts", attempts)
}

func (r *BookingRecorder) drain() {
	for {
		select {
		case p := <-r.queue:
			r.logger.Error("booking left unrecorded at shutdown",
				"alert", true,
				"transaction_id", p.Booking.TransactionID(),
				"payment_reference", p.Booking.PaymentRef())
		default:
			return
		}
	}
}
