package seat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSeatUnavailable   = errors.New("seat is not free")
	ErrInvalidHandle     = errors.New("hold handle does not own the slot")
	ErrInvalidSeatNumber = errors.New("seat number must be positive")
	ErrInvalidBusNumber  = errors.New("bus number is required")
	ErrInvalidTravelDate = errors.New("travel date must be YYYY-MM-DD or RFC3339")
)

type State string

const (
	StateFree   State = "free"
	StateHeld   State = "held"
	StateBooked State = "booked"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateFree, StateHeld, StateBooked:
		return true
	default:
		return false
	}
}

// TravelDate is a civil date; it is comparable so it can sit inside map keys.
type TravelDate struct {
	year  int
	month time.Month
	day   int
}

const dateLayout = "2006-01-02"

// ParseTravelDate accepts a bare date or an RFC3339 timestamp. The timestamp's own offset decides the day.
func ParseTravelDate(s string) (TravelDate, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return NewTravelDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewTravelDate(t), nil
	}
	return TravelDate{}, ErrInvalidTravelDate
}

func NewTravelDate(t time.Time) TravelDate {
	y, m, d := t.Date()
	return TravelDate{year: y, month: m, day: d}
}

func (d TravelDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Time returns midnight UTC of the date.
func (d TravelDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d TravelDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d TravelDate) String() string {
	return d.Time().Format(dateLayout)
}

// SlotKey identifies one seat of one bus on one travel date.
type SlotKey struct {
	BusNumber  string
	TravelDate TravelDate
	SeatNumber int
}

func NewSlotKey(busNumber string, date TravelDate, seatNumber int) (SlotKey, error) {
	busNumber = strings.TrimSpace(busNumber)
	if busNumber == "" {
		return SlotKey{}, ErrInvalidBusNumber
	}
	if date.IsZero() {
		return SlotKey{}, ErrInvalidTravelDate
	}
	if seatNumber < 1 {
		return SlotKey{}, ErrInvalidSeatNumber
	}
	return SlotKey{BusNumber: busNumber, TravelDate: date, SeatNumber: seatNumber}, nil
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s/%s/%d", k.BusNumber, k.TravelDate, k.SeatNumber)
}

// Hold is the handle returned by a successful reserve. It must end in exactly one commit or release.
type Hold struct {
	ID     uuid.UUID
	Key    SlotKey
	HeldAt time.Time
}
