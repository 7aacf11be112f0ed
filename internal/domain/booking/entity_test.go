//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/seat"
	"transit-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, token, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEmpty(t, token)
		_, err = uuid.Parse(actual.TransactionID())
		assert.NoError(t, err, "transaction id should be a uuid")
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.Equal(t, int64(1800), actual.Fare().Amount)
		assert.Equal(t, "XYZ-1234/2025-03-10/15", actual.Slot().String())
		assert.Equal(t, b.HoldID, actual.HoldID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Nil(t, actual.CancelledAt())
		assert.Len(t, actual.TokenDigest(), 32, "only the blake2b digest is kept")
	})

	t.Run("tokens and transaction ids are unique per booking", func(t *testing.T) {
		seenTokens := map[string]bool{}
		seenIDs := map[string]bool{}
		for range 50 {
			bk, token := builder.NewBookingBuilder().MustBuildDomain()
			assert.False(t, seenTokens[token])
			assert.False(t, seenIDs[bk.TransactionID()])
			seenTokens[token] = true
			seenIDs[bk.TransactionID()] = true
		}
	})

	t.Run("request validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "zero seat", mutate: func(b *builder.BookingBuilder) { b.SeatNumber = 0 }, errIs: seat.ErrInvalidSeatNumber},
			{name: "negative seat", mutate: func(b *builder.BookingBuilder) { b.SeatNumber = -3 }, errIs: seat.ErrInvalidSeatNumber},
			{name: "blank bus number", mutate: func(b *builder.BookingBuilder) { b.BusNumber = "  " }, errIs: seat.ErrInvalidBusNumber},
			{name: "slash date", mutate: func(b *builder.BookingBuilder) { b.TravelDate = "10/03/2025" }, errIs: seat.ErrInvalidTravelDate},
			{name: "RFC3339 date", mutate: func(b *builder.BookingBuilder) { b.TravelDate = "2025-03-10T08:00:00+05:30" }},
			{name: "empty name", mutate: func(b *builder.BookingBuilder) { b.PassengerName = "" }, errIs: booking.ErrInvalidPassengerName},
			{name: "name at max length", mutate: func(b *builder.BookingBuilder) {
				b.PassengerName = strings.Repeat("a", booking.MaxPassengerNameLength)
			}},
			{name: "name over max length", mutate: func(b *builder.BookingBuilder) {
				b.PassengerName = strings.Repeat("a", booking.MaxPassengerNameLength+1)
			}, errIs: booking.ErrInvalidPassengerName},
			{name: "mobile with spaces", mutate: func(b *builder.BookingBuilder) { b.MobileNumber = "071 234 5678" }},
			{name: "international mobile", mutate: func(b *builder.BookingBuilder) { b.MobileNumber = "+94712345678" }},
			{name: "mobile too short", mutate: func(b *builder.BookingBuilder) { b.MobileNumber = "12345" }, errIs: booking.ErrInvalidMobileNumber},
			{name: "mobile with letters", mutate: func(b *builder.BookingBuilder) { b.MobileNumber = "07123abc78" }, errIs: booking.ErrInvalidMobileNumber},
			{name: "email without domain", mutate: func(b *builder.BookingBuilder) { b.Email = "nimal@" }, errIs: booking.ErrInvalidEmail},
			{name: "email with display name", mutate: func(b *builder.BookingBuilder) { b.Email = "Nimal <nimal@example.com>" }, errIs: booking.ErrInvalidEmail},
			{name: "missing destination", mutate: func(b *builder.BookingBuilder) { b.DestinationPlace = "" }, errIs: booking.ErrInvalidPlace},
			{name: "same place", mutate: func(b *builder.BookingBuilder) { b.DestinationPlace = "colombo" }, errIs: booking.ErrSamePlace},
		})
	})

	t.Run("confirm rejects a hold for another slot", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		req, err := b.BuildRequest()
		require.NoError(t, err)

		hold := b.BuildHold()
		hold.Key.SeatNumber = 16

		_, _, err = booking.Confirm(req, b.BuildFare(), hold, b.PaymentRef, b.Now)
		assert.ErrorIs(t, err, booking.ErrHoldMismatch)
	})

	t.Run("confirm requires a payment reference", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		req, err := b.BuildRequest()
		require.NoError(t, err)

		_, _, err = booking.Confirm(req, b.BuildFare(), b.BuildHold(), "", b.Now)
		assert.ErrorIs(t, err, booking.ErrMissingPayment)
	})
}

func TestBooking_Cancel(t *testing.T) {
	bk, _ := builder.NewBookingBuilder().MustBuildDomain()
	at := bk.CreatedAt().Add(time.Hour)

	require.NoError(t, bk.Cancel(at))
	assert.True(t, bk.IsCancelled())
	assert.Equal(t, at, bk.UpdatedAt())
	require.NotNil(t, bk.CancelledAt())
	assert.Equal(t, at, *bk.CancelledAt())

	err := bk.Cancel(at.Add(time.Minute))
	assert.ErrorIs(t, err, booking.ErrAlreadyCancelled)
	assert.Equal(t, at, bk.UpdatedAt(), "a second cancel must not touch the record")
}

func TestBooking_VerifyCancellationToken(t *testing.T) {
	bk, token := builder.NewBookingBuilder().MustBuildDomain()

	assert.True(t, bk.VerifyCancellationToken(token))
	assert.False(t, bk.VerifyCancellationToken(""))
	assert.False(t, bk.VerifyCancellationToken(token+"x"))

	other, otherToken := builder.NewBookingBuilder().MustBuildDomain()
	assert.False(t, bk.VerifyCancellationToken(otherToken))
	assert.False(t, other.VerifyCancellationToken(token))

	assert.False(t, booking.TokenMatches(nil, token), "an empty digest never matches")
}

func TestBooking_Hold(t *testing.T) {
	b := builder.NewBookingBuilder()
	bk, _ := b.MustBuildDomain()

	hold := bk.Hold()
	assert.Equal(t, b.HoldID, hold.ID)
	assert.Equal(t, bk.Slot(), hold.Key)
}

func TestNotifications(t *testing.T) {
	bk, token := builder.NewBookingBuilder().MustBuildDomain()

	confirmed := booking.ConfirmationNotification(bk, token)
	assert.Equal(t, booking.EventConfirmed, confirmed.Event)
	assert.Equal(t, "nimal@example.com", confirmed.To)
	assert.Equal(t, token, confirmed.CancellationToken)
	assert.Contains(t, confirmed.Body, "XYZ-1234")
	assert.Contains(t, confirmed.Body, "1800")
	assert.Contains(t, confirmed.Body, bk.TransactionID())
	assert.Contains(t, confirmed.Body, token)

	cancelled := booking.CancellationNotification(bk)
	assert.Equal(t, booking.EventCancelled, cancelled.Event)
	assert.Empty(t, cancelled.CancellationToken)
	assert.NotContains(t, cancelled.Body, token)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			_, err := b.BuildRequest()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
