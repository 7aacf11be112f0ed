package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
)

const (
	releaseMaxAttempts = 3
	releaseBaseBackoff = 50 * time.Millisecond
)

type CancellationCommands interface {
	// Cancel returns ErrAlreadyCancelled for a booking that is already cancelled. The seat release is
	// repeated in that case so a release that failed after an earlier cancellation can be finished.
	Cancel(ctx context.Context, transactionID, cancellationToken string) error
}

type cancellationUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger shared.SeatLedger
	signal shared.DispatchSignal
	clock  clock.Clock
	logger *slog.Logger
}

func NewCancellationUseCase(
	uow shared.UnitOfWork,
	ledger shared.SeatLedger,
	signal shared.DispatchSignal,
	clk clock.Clock,
	logger *slog.Logger,
) CancellationCommands {
	return &cancellationUseCaseImpl{uow: uow, ledger: ledger, signal: signal, clock: clk, logger: logger}
}

func (uc *cancellationUseCaseImpl) Cancel(ctx context.Context, transactionID, cancellationToken string) error {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" || cancellationToken == "" {
		return errs.Mark(errs.New("transaction id and cancellation token are required"), errs.ErrValidation)
	}

	b, err := uc.uow.CommandReads().BookingByTransactionID(ctx, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// token first, so a wrong token learns nothing about the booking's state
	if !b.VerifyCancellationToken(cancellationToken) {
		uc.logger.Warn("cancellation token mismatch", "transaction_id", transactionID)
		return errs.ErrUnauthorized
	}
	if err := b.Cancel(uc.clock.Now()); err != nil {
		uc.releaseSeat(context.WithoutCancel(ctx), b)
		return errs.Mark(err, errs.ErrAlreadyCancelled)
	}

	payload, err := json.Marshal(booking.CancellationNotification(b))
	if err != nil {
		return errs.Wrap(err, "encode cancellation notification")
	}

	var changed bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		changed, err = tx.Bookings().MarkCancelled(ctx, tx.DB(), b)
		if err != nil || !changed {
			return err
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindEmail, shared.TopicBookingCancelled, payload, uc.clock.Now())
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !changed {
		// a concurrent cancellation won the conditional update and owns the release
		return errs.Mark(booking.ErrAlreadyCancelled, errs.ErrAlreadyCancelled)
	}

	uc.releaseSeat(context.WithoutCancel(ctx), b)
	uc.signal.Wake()

	uc.logger.Info("booking cancelled", "transaction_id", transactionID, "slot", b.Slot().String())
	return nil
}

// releaseSeat runs after the status change is durable. A failure leaves the slot booked, which is
// logged for an operator instead of failing a cancellation that already happened. Repeating the
// cancellation retries the release.
func (uc *cancellationUseCaseImpl) releaseSeat(ctx context.Context, b *booking.Booking) {
	hold := b.Hold()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = releaseBaseBackoff
	bo.MaxElapsedTime = 0

	op := func() error {
		err := uc.ledger.ReleaseBooked(ctx, hold)
		if errs.Is(err, seat.ErrInvalidHandle) {
			// freed by an earlier attempt, or the slot has moved on to another hold
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		uc.logger.Warn("retrying seat release",
			"transaction_id", b.TransactionID(),
			"wait_ms", wait.Milliseconds(),
			"error", err)
	}

	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(bo, releaseMaxAttempts-1), ctx), notify)
	switch {
	case err == nil:
		return
	case errs.Is(err, seat.ErrInvalidHandle):
		uc.logger.Debug("seat already released", "transaction_id", b.TransactionID(), "slot", hold.Key.String())
	default:
		uc.logger.Error("seat release after cancellation failed",
			"alert", true,
			"transaction_id", b.TransactionID(),
			"slot", hold.Key.String(),
			"error", err)
	}
}
