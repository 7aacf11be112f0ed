//go:build unit

package seat_test

import (
	"testing"
	"time"

	"transit-booking/internal/domain/seat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTravelDate(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		weekday time.Weekday
		errIs   error
	}{
		{name: "bare date", input: "2025-03-10", want: "2025-03-10", weekday: time.Monday},
		{name: "surrounding spaces", input: " 2025-03-10 ", want: "2025-03-10", weekday: time.Monday},
		{name: "timestamp keeps its own day", input: "2025-03-10T23:30:00+05:30", want: "2025-03-10", weekday: time.Monday},
		{name: "utc timestamp", input: "2025-03-12T00:00:00Z", want: "2025-03-12", weekday: time.Wednesday},
		{name: "slash format", input: "10/03/2025", errIs: seat.ErrInvalidTravelDate},
		{name: "impossible day", input: "2025-02-30", errIs: seat.ErrInvalidTravelDate},
		{name: "empty", input: "", errIs: seat.ErrInvalidTravelDate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := seat.ParseTravelDate(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, d.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.String())
			assert.Equal(t, tc.weekday, d.Weekday())
		})
	}
}

func TestTravelDate_Comparable(t *testing.T) {
	a, err := seat.ParseTravelDate("2025-03-10")
	require.NoError(t, err)
	b := seat.NewTravelDate(time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC))

	assert.Equal(t, a, b)
	m := map[seat.TravelDate]int{a: 1}
	assert.Equal(t, 1, m[b])
}

func TestNewSlotKey(t *testing.T) {
	date, err := seat.ParseTravelDate("2025-03-10")
	require.NoError(t, err)

	t.Run("trims the bus number", func(t *testing.T) {
		k, err := seat.NewSlotKey(" XYZ-1234 ", date, 15)
		require.NoError(t, err)
		assert.Equal(t, "XYZ-1234/2025-03-10/15", k.String())
	})

	t.Run("rejects invalid parts", func(t *testing.T) {
		_, err := seat.NewSlotKey("", date, 15)
		assert.ErrorIs(t, err, seat.ErrInvalidBusNumber)

		_, err = seat.NewSlotKey("XYZ-1234", seat.TravelDate{}, 15)
		assert.ErrorIs(t, err, seat.ErrInvalidTravelDate)

		_, err = seat.NewSlotKey("XYZ-1234", date, 0)
		assert.ErrorIs(t, err, seat.ErrInvalidSeatNumber)
	})
}

func TestState_IsValid(t *testing.T) {
	assert.True(t, seat.StateFree.IsValid())
	assert.True(t, seat.StateHeld.IsValid())
	assert.True(t, seat.StateBooked.IsValid())
	assert.False(t, seat.State("reserved").IsValid())
}
