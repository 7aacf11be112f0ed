package response

import (
	"transit-booking/internal/usecase/commands"
	"transit-booking/internal/usecase/queries"
)

const (
	MessageBooked          = "Seat booked successfully, confirmation email sent"
	MessageBookingPending  = "Payment received; the booking is being recorded and the confirmation email will follow"
	MessageCancelled       = "Booking cancelled successfully"
	MessageAlreadyCanceled = "Booking was already cancelled"
)

type BookingResponse struct {
	BusNumber         string `json:"busNumber"`
	SeatNumber        int    `json:"seatNumber"`
	PassengerName     string `json:"passengerName"`
	MobileNumber      string `json:"mobileNumber"`
	Email             string `json:"email"`
	BoardingPlace     string `json:"boardingPlace"`
	DestinationPlace  string `json:"destinationPlace"`
	Date              string `json:"date"`
	TransactionID     string `json:"transactionId"`
	CancellationToken string `json:"cancellationToken"`
	Price             int64  `json:"price"`
}

type BookAndPayResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type BookingListResponse struct {
	Bookings []*queries.BookingView `json:"bookings"`
}

type NotificationJobListResponse struct {
	Jobs []*queries.NotificationJobView `json:"jobs"`
}

func FromBookSeatResult(message string, r *commands.BookSeatResult) BookAndPayResponse {
	b := r.Booking
	slot := b.Slot()
	p := b.Passenger()
	j := b.Journey()
	return BookAndPayResponse{
		Message: message,
		Booking: BookingResponse{
			BusNumber:         slot.BusNumber,
			SeatNumber:        slot.SeatNumber,
			PassengerName:     p.Name(),
			MobileNumber:      p.Mobile(),
			Email:             p.Email(),
			BoardingPlace:     j.Boarding(),
			DestinationPlace:  j.Destination(),
			Date:              slot.TravelDate.String(),
			TransactionID:     b.TransactionID(),
			CancellationToken: r.CancellationToken,
			Price:             b.Fare().Amount,
		},
	}
}
