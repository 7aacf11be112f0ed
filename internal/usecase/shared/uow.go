package shared

import (
	"context"
	"time"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/seat"
	sqlc "transit-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ScheduleForBus(ctx context.Context, busNumber string, date seat.TravelDate) (*ScheduleSnapshot, error)
	BookingByTransactionID(ctx context.Context, transactionID string) (*booking.Booking, error)
}

type BookingRepository interface {
	// Create reports false when a booking with the same transaction id already exists.
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (bool, error)
	// MarkCancelled flips a confirmed booking to cancelled and reports whether this call made the change.
	MarkCancelled(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now, leaseUntil time.Time, limit int32) ([]NotificationJob, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, runAt time.Time, lastError string) error
}
