//go:build unit || e2e

package builder

import (
	"time"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/fare"
	"transit-booking/internal/domain/seat"
	reqdto "transit-booking/internal/handler/dto/request"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/usecase/commands"
	"transit-booking/internal/usecase/queries"
	"transit-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingBuilder defaults to the XYZ-1234 / seat 15 / Colombo -> Kandy booking priced at 1800.
type BookingBuilder struct {
	BusNumber        string
	SeatNumber       int
	TravelDate       string
	PassengerName    string
	MobileNumber     string
	Email            string
	BoardingPlace    string
	DestinationPlace string
	RouteID          string
	Price            int64
	PaymentRef       string
	HoldID           uuid.UUID
	Now              time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BusNumber:        "XYZ-1234",
		SeatNumber:       15,
		TravelDate:       "2025-03-10",
		PassengerName:    "Nimal",
		MobileNumber:     "0712345678",
		Email:            "nimal@example.com",
		BoardingPlace:    "Colombo",
		DestinationPlace: "Kandy",
		RouteID:          "route-1",
		Price:            1800,
		PaymentRef:       "pay-0001",
		HoldID:           uuid.New(),
		Now:              time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRequest() (booking.Request, error) {
	return booking.NewRequest(
		b.BusNumber, b.SeatNumber, b.TravelDate,
		b.PassengerName, b.MobileNumber, b.Email,
		b.BoardingPlace, b.DestinationPlace,
	)
}

func (b *BookingBuilder) BuildInput() commands.BookSeatInput {
	return commands.BookSeatInput{
		BusNumber:        b.BusNumber,
		SeatNumber:       b.SeatNumber,
		TravelDate:       b.TravelDate,
		PassengerName:    b.PassengerName,
		MobileNumber:     b.MobileNumber,
		Email:            b.Email,
		BoardingPlace:    b.BoardingPlace,
		DestinationPlace: b.DestinationPlace,
	}
}

func (b *BookingBuilder) BuildFare() fare.Fare {
	return fare.Fare{RouteID: b.RouteID, From: b.BoardingPlace, To: b.DestinationPlace, Amount: b.Price}
}

func (b *BookingBuilder) BuildHold() seat.Hold {
	date, err := seat.ParseTravelDate(b.TravelDate)
	if err != nil {
		panic(err)
	}
	return seat.Hold{
		ID:     b.HoldID,
		Key:    seat.SlotKey{BusNumber: b.BusNumber, TravelDate: date, SeatNumber: b.SeatNumber},
		HeldAt: b.Now,
	}
}

// BuildDomain returns a confirmed booking and the plaintext cancellation token.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, string, error) {
	req, err := b.BuildRequest()
	if err != nil {
		return nil, "", err
	}
	return booking.Confirm(req, b.BuildFare(), b.BuildHold(), b.PaymentRef, b.Now)
}

func (b *BookingBuilder) MustBuildDomain() (*booking.Booking, string) {
	bk, token, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk, token
}

func (b *BookingBuilder) BuildInfra(transactionID string, digest []byte) sqlc.Bookings {
	date, err := seat.ParseTravelDate(b.TravelDate)
	if err != nil {
		panic(err)
	}
	return sqlc.Bookings{
		TransactionID:           transactionID,
		BusNumber:               b.BusNumber,
		TravelDate:              pgtype.Date{Time: date.Time(), Valid: true},
		SeatNumber:              int32(b.SeatNumber), // #nosec G115 -- test data
		HoldID:                  b.HoldID,
		PassengerName:           b.PassengerName,
		MobileNumber:            b.MobileNumber,
		Email:                   b.Email,
		BoardingPlace:           b.BoardingPlace,
		DestinationPlace:        b.DestinationPlace,
		RouteID:                 b.RouteID,
		Fare:                    b.Price,
		CancellationTokenDigest: digest,
		PaymentReference:        b.PaymentRef,
		Status:                  booking.StatusConfirmed.String(),
		CreatedAt:               pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:               pgtype.Timestamptz{Time: b.Now, Valid: true},
	}
}

func (b *BookingBuilder) BuildBookAndPayRequestDTO() reqdto.BookAndPayRequest {
	return reqdto.BookAndPayRequest{
		BusNumber:        b.BusNumber,
		SeatNumber:       b.SeatNumber,
		Date:             b.TravelDate,
		PassengerName:    b.PassengerName,
		MobileNumber:     b.MobileNumber,
		Email:            b.Email,
		BoardingPlace:    b.BoardingPlace,
		DestinationPlace: b.DestinationPlace,
	}
}

func (b *BookingBuilder) BuildView(transactionID string) *queries.BookingView {
	return &queries.BookingView{
		TransactionID:    transactionID,
		BusNumber:        b.BusNumber,
		SeatNumber:       b.SeatNumber,
		TravelDate:       b.TravelDate,
		PassengerName:    b.PassengerName,
		MobileNumber:     b.MobileNumber,
		Email:            b.Email,
		BoardingPlace:    b.BoardingPlace,
		DestinationPlace: b.DestinationPlace,
		RouteID:          b.RouteID,
		Price:            b.Price,
		PaymentReference: b.PaymentRef,
		Status:           booking.StatusConfirmed.String(),
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}

// BuildSchedule is the schedule snapshot matching the builder's bus and route.
func (b *BookingBuilder) BuildSchedule() *shared.ScheduleSnapshot {
	return &shared.ScheduleSnapshot{
		ScheduleID:    "sch-5678",
		BusNumber:     b.BusNumber,
		RouteID:       b.RouteID,
		RouteName:     "Colombo - Kandy",
		BusType:       "Luxury",
		Capacity:      40,
		DepartureTime: "08:00",
		ArrivalTime:   "11:30",
		Stops:         []string{"Colombo", "Kadawatha", "Kegalle", "Kandy"},
		Prices: []fare.Entry{
			{From: "Colombo", To: "Kandy", Price: b.Price},
			{From: "Colombo", To: "Kegalle", Price: 1200},
		},
	}
}
