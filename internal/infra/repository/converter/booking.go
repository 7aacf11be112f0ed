package converter

import (
	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/fare"
	"transit-booking/internal/domain/seat"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	slot := b.Slot()
	passenger := b.Passenger()
	journey := b.Journey()

	return sqlc.CreateBookingParams{
		TransactionID:           b.TransactionID(),
		BusNumber:               slot.BusNumber,
		TravelDate:              pgconv.DateToPgtype(slot.TravelDate.Time()),
		SeatNumber:              int32(slot.SeatNumber), // #nosec G115 -- bounded by bus capacity
		HoldID:                  b.HoldID(),
		PassengerName:           passenger.Name(),
		MobileNumber:            passenger.Mobile(),
		Email:                   passenger.Email(),
		BoardingPlace:           journey.Boarding(),
		DestinationPlace:        journey.Destination(),
		RouteID:                 b.Fare().RouteID,
		Fare:                    b.Fare().Amount,
		CancellationTokenDigest: b.TokenDigest(),
		PaymentReference:        b.PaymentRef(),
		Status:                  b.Status().String(),
		CreatedAt:               pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:               pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromInfra(row sqlc.Bookings) *booking.Booking {
	slot := seat.SlotKey{
		BusNumber:  row.BusNumber,
		TravelDate: seat.NewTravelDate(row.TravelDate.Time),
		SeatNumber: int(row.SeatNumber),
	}

	return booking.Reconstruct(
		row.TransactionID,
		slot,
		row.HoldID,
		booking.ReconstructPassenger(row.PassengerName, row.MobileNumber, row.Email),
		booking.ReconstructJourney(row.BoardingPlace, row.DestinationPlace),
		fare.Fare{
			RouteID: row.RouteID,
			From:    row.BoardingPlace,
			To:      row.DestinationPlace,
			Amount:  row.Fare,
		},
		row.CancellationTokenDigest,
		row.PaymentReference,
		booking.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
	)
}
