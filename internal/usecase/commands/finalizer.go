package commands

import (
	"context"
	"encoding/json"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/shared"
)

// PendingBooking is a paid booking whose slot commit or record insert has not completed yet.
type PendingBooking struct {
	Booking           *booking.Booking
	CancellationToken string
}

// BookingFinalizer commits the hold and records the booking in one attempt.
// Both steps are idempotent, so callers may repeat Finalize until it succeeds.
type BookingFinalizer interface {
	Finalize(ctx context.Context, p PendingBooking) error
}

type bookingFinalizerImpl struct {
	uow    shared.UnitOfWork
	ledger shared.SeatLedger
	signal shared.DispatchSignal
	clock  clock.Clock
}

func NewBookingFinalizer(uow shared.UnitOfWork, ledger shared.SeatLedger, signal shared.DispatchSignal, clk clock.Clock) BookingFinalizer {
	return &bookingFinalizerImpl{uow: uow, ledger: ledger, signal: signal, clock: clk}
}

func (f *bookingFinalizerImpl) Finalize(ctx context.Context, p PendingBooking) error {
	if err := f.ledger.Commit(ctx, p.Booking.Hold()); err != nil {
		if errs.Is(err, seat.ErrInvalidHandle) {
			return errs.Mark(err, errs.ErrHoldLost)
		}
		return errs.Wrap(err, "commit seat hold")
	}

	payload, err := json.Marshal(booking.ConfirmationNotification(p.Booking, p.CancellationToken))
	if err != nil {
		return errs.Wrap(err, "encode confirmation notification")
	}

	err = f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Bookings().Create(ctx, tx.DB(), p.Booking)
		if err != nil {
			return err
		}
		if !created {
			// an earlier attempt committed; its notification job is already queued
			return nil
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationKindEmail, shared.TopicBookingConfirmed, payload, f.clock.Now())
	})
	if err != nil {
		return errs.Wrap(err, "record booking")
	}

	f.signal.Wake()
	return nil
}

// IsTerminalFinalizeError reports failures that no amount of retrying will fix.
func IsTerminalFinalizeError(err error) bool {
	return errs.Is(err, errs.ErrHoldLost) || infra.IsKind(err, infra.KindDuplicateKey)
}
