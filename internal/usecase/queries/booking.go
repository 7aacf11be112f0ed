package queries

import (
	"context"

	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/pkg/errs"
)

type BookingReadStore interface {
	FindByTransactionID(ctx context.Context, transactionID string) (*BookingView, error)
	ListByBusAndDate(ctx context.Context, busNumber string, date seat.TravelDate) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByTransactionID(ctx context.Context, transactionID string) (*BookingView, error)
	ListByBusAndDate(ctx context.Context, busNumber, date string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByTransactionID(ctx context.Context, transactionID string) (*BookingView, error) {
	if transactionID == "" {
		return nil, errs.Mark(errs.New("transaction id is required"), errs.ErrValidation)
	}
	view, err := q.store.FindByTransactionID(ctx, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBusAndDate(ctx context.Context, busNumber, date string) ([]*BookingView, error) {
	if busNumber == "" {
		return nil, errs.Mark(seat.ErrInvalidBusNumber, errs.ErrValidation)
	}
	travelDate, err := seat.ParseTravelDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	views, err := q.store.ListByBusAndDate(ctx, busNumber, travelDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
