package repository

import (
	"context"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/infra"
	"transit-booking/internal/infra/repository/converter"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (string, error)
	CancelBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelBookingParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{
		queries: queries,
	}
}

// Create is idempotent on transaction id. It reports false when the row already existed,
// which happens when a retry follows a commit whose acknowledgement was lost.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (bool, error) {
	params := converter.BookingToInfra(b)

	_, err := r.queries.CreateBooking(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to create booking", err)
	}

	return true, nil
}

func (r *BookingRepository) MarkCancelled(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (bool, error) {
	params := sqlc.CancelBookingParams{
		TransactionID: b.TransactionID(),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}

	affected, err := r.queries.CancelBooking(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}

	return affected == 1, nil
}
