package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/fare"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/pkg/config"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
)

var errSeatOutOfRange = errs.New("seat number exceeds bus capacity")

type BookSeatInput struct {
	BusNumber        string
	SeatNumber       int
	TravelDate       string
	PassengerName    string
	MobileNumber     string
	Email            string
	BoardingPlace    string
	DestinationPlace string
}

type BookSeatResult struct {
	Booking           *booking.Booking
	CancellationToken string
}

// PendingRecorder takes over bookings whose inline recording ran out of attempts.
type PendingRecorder interface {
	Enqueue(p PendingBooking) bool
}

type BookingCommands interface {
	// BookSeat runs validate, fare, reserve, charge, commit, record. When the charge succeeded but the
	// record could not be written in time it returns both the result and ErrPersistenceRetryExhausted;
	// the result is nil when the record can never be written (the hold was lost).
	BookSeat(ctx context.Context, in BookSeatInput) (*BookSeatResult, error)
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	ledger    shared.SeatLedger
	fares     FareResolver
	gateway   shared.PaymentGateway
	finalizer BookingFinalizer
	recorder  PendingRecorder
	clock     clock.Clock
	cfg       config.BookingConfig
	currency  string
	logger    *slog.Logger
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	ledger shared.SeatLedger,
	fares FareResolver,
	gateway shared.PaymentGateway,
	finalizer BookingFinalizer,
	recorder PendingRecorder,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		ledger:    ledger,
		fares:     fares,
		gateway:   gateway,
		finalizer: finalizer,
		recorder:  recorder,
		clock:     clk,
		cfg:       cfg.Booking,
		currency:  cfg.Payment.Currency,
		logger:    logger,
	}
}

func (uc *bookingUseCaseImpl) BookSeat(ctx context.Context, in BookSeatInput) (*BookSeatResult, error) {
	req, err := booking.NewRequest(
		in.BusNumber, in.SeatNumber, in.TravelDate,
		in.PassengerName, in.MobileNumber, in.Email,
		in.BoardingPlace, in.DestinationPlace,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	slot := req.Slot()

	schedule, err := uc.uow.CommandReads().ScheduleForBus(ctx, slot.BusNumber, slot.TravelDate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrScheduleNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if slot.SeatNumber > schedule.Capacity {
		return nil, errs.Mark(errs.Wrapf(errSeatOutOfRange, "capacity %d", schedule.Capacity), errs.ErrValidation)
	}

	f, err := uc.fares.Resolve(ctx, schedule.RouteID, req.Journey().Boarding(), req.Journey().Destination())
	if err != nil {
		return nil, err
	}

	// Admission control: a taken seat fails now instead of queueing behind the holder.
	hold, err := uc.ledger.Reserve(ctx, slot)
	if err != nil {
		if errs.Is(err, seat.ErrSeatUnavailable) {
			return nil, errs.Mark(err, errs.ErrSeatUnavailable)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	saga := shared.NewSaga(uc.logger)
	saga.Push("release seat hold", func(ctx context.Context) error {
		err := uc.ledger.Release(ctx, hold)
		if errs.Is(err, seat.ErrInvalidHandle) {
			// the sweeper got there first
			return backoff.Permanent(err)
		}
		return err
	})

	charge, err := uc.charge(ctx, req, f, hold)
	if err != nil {
		saga.Compensate(ctx)
		return nil, err
	}

	b, token, err := booking.Confirm(req, f, hold, charge.Reference, uc.clock.Now())
	if err != nil {
		saga.Compensate(ctx)
		uc.logger.Error("charged booking could not be confirmed",
			"alert", true,
			"payment_reference", charge.Reference,
			"slot", slot.String(),
			"error", err)
		return nil, errs.Mark(err, errs.ErrPersistenceRetryExhausted)
	}
	// From here the customer has paid: the hold is only ever committed, never rolled back.
	saga.Forget()

	result := &BookSeatResult{Booking: b, CancellationToken: token}
	if err := uc.finalize(context.WithoutCancel(ctx), PendingBooking{Booking: b, CancellationToken: token}); err != nil {
		return uc.handleFinalizeFailure(result, err)
	}

	uc.logger.Info("seat booked",
		"transaction_id", b.TransactionID(),
		"slot", slot.String(),
		"fare", f.Amount)
	return result, nil
}

func (uc *bookingUseCaseImpl) charge(ctx context.Context, req booking.Request, f fare.Fare, hold seat.Hold) (shared.ChargeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.PaymentTimeout)
	defer cancel()

	slot := req.Slot()
	res, err := uc.gateway.Charge(ctx, shared.ChargeRequest{
		IdempotencyKey: hold.ID.String(),
		Amount:         f.Amount,
		Currency:       uc.currency,
		Description:    fmt.Sprintf("Bus %s seat %d on %s, %s to %s", slot.BusNumber, slot.SeatNumber, slot.TravelDate, f.From, f.To),
		CustomerEmail:  req.Passenger().Email(),
	})
	if err != nil {
		uc.logger.Warn("payment charge failed",
			"slot", slot.String(),
			"timed_out", errs.Is(ctx.Err(), context.DeadlineExceeded),
			"error", err)
		return shared.ChargeResult{}, errs.Mark(errs.Wrap(err, "charge"), errs.ErrPaymentFailed)
	}
	if !res.Approved {
		uc.logger.Info("payment declined", "slot", slot.String(), "reason", res.DeclineReason)
		return shared.ChargeResult{}, errs.Mark(errs.Newf("payment declined: %s", res.DeclineReason), errs.ErrPaymentFailed)
	}
	return res, nil
}

// finalize retries commit and record with backoff. Neither step re-reserves or re-charges.
func (uc *bookingUseCaseImpl) finalize(ctx context.Context, p PendingBooking) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = uc.cfg.PersistBaseBackoff
	b.MaxInterval = 20 * uc.cfg.PersistBaseBackoff
	b.MaxElapsedTime = 0

	op := func() error {
		err := uc.finalizer.Finalize(ctx, p)
		if err != nil && IsTerminalFinalizeError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		uc.logger.Warn("retrying booking record",
			"transaction_id", p.Booking.TransactionID(),
			"wait_ms", wait.Milliseconds(),
			"error", err)
	}

	retries := uint64(uc.cfg.PersistMaxAttempts - 1)
	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(b, retries), ctx), notify)
	if err == nil || IsTerminalFinalizeError(err) {
		return err
	}
	return errs.Mark(err, errs.ErrPersistenceRetryExhausted)
}

func (uc *bookingUseCaseImpl) handleFinalizeFailure(result *BookSeatResult, err error) (*BookSeatResult, error) {
	b := result.Booking
	logArgs := []any{
		"alert", true,
		"transaction_id", b.TransactionID(),
		"payment_reference", b.PaymentRef(),
		"slot", b.Slot().String(),
		"error", err,
	}

	// Every branch below is a captured payment without a booking record.
	if IsTerminalFinalizeError(err) {
		uc.logger.Error("paid booking cannot be recorded; payment needs refund", logArgs...)
		return nil, errs.Mark(err, errs.ErrPersistenceRetryExhausted)
	}

	uc.logger.Error("booking not recorded after retries; handing to recorder", logArgs...)
	if !uc.recorder.Enqueue(PendingBooking{Booking: b, CancellationToken: result.CancellationToken}) {
		uc.logger.Error("recorder queue full; booking must be reconciled manually", logArgs...)
	}
	return result, errs.Mark(err, errs.ErrPersistenceRetryExhausted)
}
