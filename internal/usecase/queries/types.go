package queries

import (
	"time"

	"github.com/google/uuid"
)

const (
	SeatStatusAvailable = "Available"
	SeatStatusHeld      = "Held"
	SeatStatusBooked    = "Booked"
)

// BookingView is the operator-facing projection of a booking. The cancellation token never leaves the write side.
type BookingView struct {
	TransactionID    string     `json:"transactionId"`
	BusNumber        string     `json:"busNumber"`
	SeatNumber       int        `json:"seatNumber"`
	TravelDate       string     `json:"date"`
	PassengerName    string     `json:"passengerName"`
	MobileNumber     string     `json:"mobileNumber"`
	Email            string     `json:"email"`
	BoardingPlace    string     `json:"boardingPlace"`
	DestinationPlace string     `json:"destinationPlace"`
	RouteID          string     `json:"routeId"`
	Price            int64      `json:"price"`
	PaymentReference string     `json:"paymentReference"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
}

type SeatStatusView struct {
	SeatNumber int    `json:"seatNumber"`
	Status     string `json:"status"`
}

type SeatMapView struct {
	BusNumber string           `json:"busNumber"`
	Date      string           `json:"date"`
	Capacity  int              `json:"capacity"`
	Seats     []SeatStatusView `json:"seats"`
}

type BusSearchItem struct {
	ScheduleID       string   `json:"scheduleId"`
	RouteID          string   `json:"routeId"`
	RouteName        string   `json:"routeName"`
	BusNumber        string   `json:"busNumber"`
	BusType          string   `json:"type"`
	Capacity         int      `json:"capacity"`
	AvailableSeats   int      `json:"availableSeats"`
	BoardingPlace    string   `json:"boardingPlace"`
	DestinationPlace string   `json:"destinationPlace"`
	Price            int64    `json:"price"`
	DepartureTime    string   `json:"startTime"`
	ArrivalTime      string   `json:"endTime"`
	Stops            []string `json:"stops"`
}

// NotificationJobView never carries the message body or the cancellation token.
type NotificationJobView struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	Topic         string    `json:"topic"`
	TransactionID string    `json:"transactionId,omitempty"`
	Recipient     string    `json:"recipient,omitempty"`
	RunAt         time.Time `json:"runAt"`
	Attempts      int32     `json:"attempts"`
	Status        string    `json:"status"`
	LastError     *string   `json:"lastError,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
