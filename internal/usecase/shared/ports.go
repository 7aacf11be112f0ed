package shared

import (
	"context"
	"time"

	"transit-booking/internal/domain/seat"
)

// SeatLedger owns every Free/Held/Booked transition of a seat slot.
// Each call is atomic per slot key; calls for different keys never wait on each other.
type SeatLedger interface {
	Reserve(ctx context.Context, key seat.SlotKey) (seat.Hold, error)
	Commit(ctx context.Context, hold seat.Hold) error
	Release(ctx context.Context, hold seat.Hold) error
	ReleaseBooked(ctx context.Context, hold seat.Hold) error
	Status(ctx context.Context, key seat.SlotKey) (seat.State, error)
	// Statuses lists the non-free slots of one bus on one date.
	Statuses(ctx context.Context, busNumber string, date seat.TravelDate) (map[int]seat.State, error)
	SweepExpired(ctx context.Context, cutoff time.Time) (int, error)
}

type ChargeRequest struct {
	IdempotencyKey string
	Amount         int64
	Currency       string
	Description    string
	CustomerEmail  string
}

type ChargeResult struct {
	Approved      bool
	Reference     string
	DeclineReason string
}

type PaymentGateway interface {
	Charge(ctx context.Context, req ChargeRequest) (ChargeResult, error)
}

type NotificationPublisher interface {
	Publish(ctx context.Context, job NotificationJob) error
}

// DispatchSignal nudges the outbox dispatcher; implementations must not block.
type DispatchSignal interface {
	Wake()
}
