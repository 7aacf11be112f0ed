package readstore

import (
	"context"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/infra/repository/converter"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/pkg/pgconv"
	"transit-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingByTransactionID(ctx context.Context, db sqlc.DBTX, transactionID string) (sqlc.Bookings, error)
	ListBookingsByBusAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByBusAndDateParams) ([]sqlc.Bookings, error)
	ListConfirmedBookingsFrom(ctx context.Context, db sqlc.DBTX, travelDate pgtype.Date) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

// Aggregate loads the write-side entity, token digest included.
func (r *BookingReadStore) Aggregate(ctx context.Context, transactionID string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByTransactionID(ctx, r.db, transactionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by transaction id", err)
	}
	return converter.BookingFromInfra(row), nil
}

func (r *BookingReadStore) FindByTransactionID(ctx context.Context, transactionID string) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByTransactionID(ctx, r.db, transactionID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by transaction id", err)
	}
	return rowToBookingView(row), nil
}

func (r *BookingReadStore) ListByBusAndDate(ctx context.Context, busNumber string, date seat.TravelDate) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByBusAndDate(ctx, r.db, sqlc.ListBookingsByBusAndDateParams{
		BusNumber:  busNumber,
		TravelDate: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by bus and date", err)
	}

	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = rowToBookingView(row)
	}
	return result, nil
}

// ConfirmedFrom lists confirmed bookings travelling on or after date; the in-memory ledger is rebuilt from it.
func (r *BookingReadStore) ConfirmedFrom(ctx context.Context, date seat.TravelDate) ([]*booking.Booking, error) {
	rows, err := r.queries.ListConfirmedBookingsFrom(ctx, r.db, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list confirmed bookings", err)
	}

	result := make([]*booking.Booking, len(rows))
	for i, row := range rows {
		result[i] = converter.BookingFromInfra(row)
	}
	return result, nil
}

func rowToBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		TransactionID:    row.TransactionID,
		BusNumber:        row.BusNumber,
		SeatNumber:       int(row.SeatNumber),
		TravelDate:       seat.NewTravelDate(row.TravelDate.Time).String(),
		PassengerName:    row.PassengerName,
		MobileNumber:     row.MobileNumber,
		Email:            row.Email,
		BoardingPlace:    row.BoardingPlace,
		DestinationPlace: row.DestinationPlace,
		RouteID:          row.RouteID,
		Price:            row.Fare,
		PaymentReference: row.PaymentReference,
		Status:           row.Status,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		CancelledAt:      pgconv.TimePtrFromPgtype(row.CancelledAt),
	}
}
