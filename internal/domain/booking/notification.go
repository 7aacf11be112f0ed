package booking

import (
	"fmt"
	"strings"
)

const (
	EventConfirmed = "booking.confirmed"
	EventCancelled = "booking.cancelled"
)

// Notification is the payload handed to the delivery queue. The cancellation token is only set on
// confirmations; the outbox strips it once the job reaches a terminal state.
type Notification struct {
	Event             string `json:"event"`
	To                string `json:"to"`
	Subject           string `json:"subject"`
	Body              string `json:"body"`
	TransactionID     string `json:"transactionId"`
	CancellationToken string `json:"cancellationToken,omitempty"`
}

func ConfirmationNotification(b *Booking, token string) Notification {
	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", b.passenger.name)
	body.WriteString("Your seat booking is confirmed.\n\n")
	writeDetails(&body, b)
	fmt.Fprintf(&body, "Cancellation Token: %s\n\n", token)
	body.WriteString("Keep this token safe. You need it together with the transaction ID to cancel the booking.\n")

	return Notification{
		Event:             EventConfirmed,
		To:                b.passenger.email,
		Subject:           "Seat Booking Confirmation",
		Body:              body.String(),
		TransactionID:     b.transactionID,
		CancellationToken: token,
	}
}

func CancellationNotification(b *Booking) Notification {
	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", b.passenger.name)
	body.WriteString("Your seat booking has been cancelled.\n\n")
	writeDetails(&body, b)

	return Notification{
		Event:         EventCancelled,
		To:            b.passenger.email,
		Subject:       "Seat Booking Cancellation",
		Body:          body.String(),
		TransactionID: b.transactionID,
	}
}

func writeDetails(w *strings.Builder, b *Booking) {
	fmt.Fprintf(w, "Bus Number: %s\n", b.slot.BusNumber)
	fmt.Fprintf(w, "Seat Number: %d\n", b.slot.SeatNumber)
	fmt.Fprintf(w, "Date: %s\n", b.slot.TravelDate)
	fmt.Fprintf(w, "From: %s\n", b.journey.boarding)
	fmt.Fprintf(w, "To: %s\n", b.journey.destination)
	fmt.Fprintf(w, "Price: %d\n", b.fare.Amount)
	fmt.Fprintf(w, "Transaction ID: %s\n", b.transactionID)
}
