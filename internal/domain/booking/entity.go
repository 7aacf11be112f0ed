package booking

import (
	"errors"
	"time"

	"transit-booking/internal/domain/fare"
	"transit-booking/internal/domain/seat"

	"github.com/google/uuid"
)

var (
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrHoldMismatch     = errors.New("hold does not match the requested slot")
	ErrMissingPayment   = errors.New("payment reference is required")
)

// Request is a booking attempt that passed shape validation. Building one has no side effects.
type Request struct {
	slot      seat.SlotKey
	passenger Passenger
	journey   Journey
}

func NewRequest(
	busNumber string,
	seatNumber int,
	travelDate string,
	passengerName, mobileNumber, email string,
	boardingPlace, destinationPlace string,
) (Request, error) {
	date, err := seat.ParseTravelDate(travelDate)
	if err != nil {
		return Request{}, err
	}
	slot, err := seat.NewSlotKey(busNumber, date, seatNumber)
	if err != nil {
		return Request{}, err
	}
	passenger, err := NewPassenger(passengerName, mobileNumber, email)
	if err != nil {
		return Request{}, err
	}
	journey, err := NewJourney(boardingPlace, destinationPlace)
	if err != nil {
		return Request{}, err
	}
	return Request{slot: slot, passenger: passenger, journey: journey}, nil
}

func (r Request) Slot() seat.SlotKey   { return r.slot }
func (r Request) Passenger() Passenger { return r.passenger }
func (r Request) Journey() Journey     { return r.journey }

type Booking struct {
	transactionID string
	slot          seat.SlotKey
	holdID        uuid.UUID
	passenger     Passenger
	journey       Journey
	fare          fare.Fare
	tokenDigest   []byte
	paymentRef    string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	cancelledAt   *time.Time
}

// Confirm builds the record of a paid booking. The returned token is the only copy of the cancellation
// secret; the booking keeps its digest.
func Confirm(req Request, f fare.Fare, hold seat.Hold, paymentRef string, now time.Time) (*Booking, string, error) {
	if hold.Key != req.slot {
		return nil, "", ErrHoldMismatch
	}
	if paymentRef == "" {
		return nil, "", ErrMissingPayment
	}

	transactionID, err := NewTransactionID()
	if err != nil {
		return nil, "", err
	}
	token, digest, err := NewCancellationToken()
	if err != nil {
		return nil, "", err
	}

	return &Booking{
		transactionID: transactionID,
		slot:          req.slot,
		holdID:        hold.ID,
		passenger:     req.passenger,
		journey:       req.journey,
		fare:          f,
		tokenDigest:   digest,
		paymentRef:    paymentRef,
		status:        StatusConfirmed,
		createdAt:     now,
		updatedAt:     now,
	}, token, nil
}

func Reconstruct(
	transactionID string,
	slot seat.SlotKey,
	holdID uuid.UUID,
	passenger Passenger,
	journey Journey,
	f fare.Fare,
	tokenDigest []byte,
	paymentRef string,
	status Status,
	createdAt, updatedAt time.Time,
	cancelledAt *time.Time,
) *Booking {
	return &Booking{
		transactionID: transactionID,
		slot:          slot,
		holdID:        holdID,
		passenger:     passenger,
		journey:       journey,
		fare:          f,
		tokenDigest:   tokenDigest,
		paymentRef:    paymentRef,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		cancelledAt:   cancelledAt,
	}
}

func (b *Booking) VerifyCancellationToken(token string) bool {
	return TokenMatches(b.tokenDigest, token)
}

// Cancel is a status change; bookings are never deleted.
func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.updatedAt = now
	b.cancelledAt = &now
	return nil
}

// Hold rebuilds the ledger handle that owns this booking's slot.
func (b *Booking) Hold() seat.Hold {
	return seat.Hold{ID: b.holdID, Key: b.slot, HeldAt: b.createdAt}
}

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }
func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

func (b *Booking) TransactionID() string   { return b.transactionID }
func (b *Booking) Slot() seat.SlotKey      { return b.slot }
func (b *Booking) HoldID() uuid.UUID       { return b.holdID }
func (b *Booking) Passenger() Passenger    { return b.passenger }
func (b *Booking) Journey() Journey        { return b.journey }
func (b *Booking) Fare() fare.Fare         { return b.fare }
func (b *Booking) TokenDigest() []byte     { return b.tokenDigest }
func (b *Booking) PaymentRef() string      { return b.paymentRef }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
