package request

import (
	"transit-booking/internal/usecase/commands"
)

type BookAndPayRequest struct {
	BusNumber        string `json:"busNumber" binding:"required"`
	SeatNumber       int    `json:"seatNumber" binding:"required"`
	Date             string `json:"date" binding:"required"`
	PassengerName    string `json:"passengerName" binding:"required"`
	MobileNumber     string `json:"mobileNumber" binding:"required"`
	Email            string `json:"email" binding:"required"`
	BoardingPlace    string `json:"boardingPlace" binding:"required"`
	DestinationPlace string `json:"destinationPlace" binding:"required"`
}

func (r BookAndPayRequest) ToInput() commands.BookSeatInput {
	return commands.BookSeatInput{
		BusNumber:        r.BusNumber,
		SeatNumber:       r.SeatNumber,
		TravelDate:       r.Date,
		PassengerName:    r.PassengerName,
		MobileNumber:     r.MobileNumber,
		Email:            r.Email,
		BoardingPlace:    r.BoardingPlace,
		DestinationPlace: r.DestinationPlace,
	}
}

type CancelBookingRequest struct {
	TransactionID     string `json:"transactionId" binding:"required"`
	CancellationToken string `json:"cancellationToken" binding:"required"`
}

type AvailableSeatsQuery struct {
	BusNumber string `form:"busNumber" binding:"required"`
	Date      string `form:"date" binding:"required"`
}

type SearchBusesQuery struct {
	BoardingPlace    string `form:"boardingPlace" binding:"required"`
	DestinationPlace string `form:"destinationPlace" binding:"required"`
	Date             string `form:"date" binding:"required"`
}

type OperatorBookingsQuery struct {
	BusNumber string `form:"busNumber" binding:"required"`
	Date      string `form:"date" binding:"required"`
}

type PendingNotificationsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
}
