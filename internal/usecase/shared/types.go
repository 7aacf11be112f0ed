package shared

import (
	"time"

	"transit-booking/internal/domain/fare"

	"github.com/google/uuid"
)

// ScheduleSnapshot is the reference data a booking needs about one bus on one travel date.
type ScheduleSnapshot struct {
	ScheduleID    string
	BusNumber     string
	RouteID       string
	RouteName     string
	BusType       string
	Capacity      int
	DepartureTime string
	ArrivalTime   string
	Stops         []string
	// Prices is only filled by day-wide listings.
	Prices []fare.Entry
}

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Attempts  int32
	RunAt     time.Time
	CreatedAt time.Time
}

const (
	NotificationKindEmail = "email"

	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"

	NotificationStatusQueued = "queued"
	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)
