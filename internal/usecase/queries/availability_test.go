//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/queries"
	"transit-booking/internal/usecase/shared"
	"transit-booking/tests/common/builder"
	queriesmock "transit-booking/tests/mock/queries"
	sharedmock "transit-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func monday(t *testing.T) seat.TravelDate {
	t.Helper()
	d, err := seat.ParseTravelDate("2025-03-10")
	require.NoError(t, err)
	return d
}

func TestGetSeatMap(t *testing.T) {
	ctx := context.Background()

	t.Run("labels every seat up to capacity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockScheduleReadStore(ctrl)
		ledger := sharedmock.NewMockSeatLedger(ctrl)

		schedule := builder.NewBookingBuilder().BuildSchedule()
		schedule.Capacity = 4
		store.EXPECT().ScheduleForBus(ctx, "XYZ-1234", monday(t)).Return(schedule, nil)
		ledger.EXPECT().Statuses(ctx, "XYZ-1234", monday(t)).Return(map[int]seat.State{
			2: seat.StateHeld,
			3: seat.StateBooked,
			9: seat.StateBooked, // outside capacity, ignored
		}, nil)

		view, err := queries.NewSeatAvailabilityQueries(store, ledger).GetSeatMap(ctx, "XYZ-1234", "2025-03-10")
		require.NoError(t, err)

		assert.Equal(t, "2025-03-10", view.Date)
		assert.Equal(t, []queries.SeatStatusView{
			{SeatNumber: 1, Status: queries.SeatStatusAvailable},
			{SeatNumber: 2, Status: queries.SeatStatusHeld},
			{SeatNumber: 3, Status: queries.SeatStatusBooked},
			{SeatNumber: 4, Status: queries.SeatStatusAvailable},
		}, view.Seats)
	})

	t.Run("error mapping", func(t *testing.T) {
		testCases := []struct {
			name     string
			bus      string
			date     string
			storeErr error
			errIs    error
		}{
			{name: "missing bus", bus: "", date: "2025-03-10", errIs: errs.ErrValidation},
			{name: "bad date", bus: "XYZ-1234", date: "March 10", errIs: errs.ErrValidation},
			{name: "unknown bus", bus: "XYZ-1234", date: "2025-03-10", storeErr: infra.WrapRepoErr("schedule", nil, infra.KindNotFound), errIs: errs.ErrScheduleNotFound},
			{name: "db failure", bus: "XYZ-1234", date: "2025-03-10", storeErr: infra.WrapRepoErr("schedule", errors.New("down")), errIs: errs.ErrDatabaseOperationFailed},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				store := queriesmock.NewMockScheduleReadStore(ctrl)
				if tc.storeErr != nil {
					store.EXPECT().ScheduleForBus(ctx, gomock.Any(), gomock.Any()).Return(nil, tc.storeErr)
				}

				_, err := queries.NewSeatAvailabilityQueries(store, sharedmock.NewMockSeatLedger(ctrl)).GetSeatMap(ctx, tc.bus, tc.date)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
			})
		}
	})
}

func TestSearchBuses(t *testing.T) {
	ctx := context.Background()

	xyz := builder.NewBookingBuilder().BuildSchedule()
	abc := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.BusNumber = "ABC-9999"
		b.Price = 1500
	}).BuildSchedule()
	abc.ScheduleID = "sch-0002"
	abc.Capacity = 2

	t.Run("returns buses that price the pair with seats left", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockScheduleReadStore(ctrl)
		ledger := sharedmock.NewMockSeatLedger(ctrl)

		store.EXPECT().SchedulesForDay(ctx, monday(t)).Return([]*shared.ScheduleSnapshot{xyz, abc}, nil)
		ledger.EXPECT().Statuses(ctx, "XYZ-1234", monday(t)).Return(map[int]seat.State{15: seat.StateBooked, 16: seat.StateHeld}, nil)
		ledger.EXPECT().Statuses(ctx, "ABC-9999", monday(t)).Return(map[int]seat.State{}, nil)

		items, err := queries.NewBusSearchQueries(store, ledger).Search(ctx, "colombo", "kandy", "2025-03-10")
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "XYZ-1234", items[0].BusNumber)
		assert.Equal(t, int64(1800), items[0].Price)
		assert.Equal(t, 38, items[0].AvailableSeats)
		assert.Equal(t, "Colombo", items[0].BoardingPlace, "stop names come from the price list")

		assert.Equal(t, int64(1500), items[1].Price)
		assert.Equal(t, 2, items[1].AvailableSeats)
	})

	t.Run("skips routes that do not price the pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockScheduleReadStore(ctrl)
		ledger := sharedmock.NewMockSeatLedger(ctrl)

		store.EXPECT().SchedulesForDay(ctx, monday(t)).Return([]*shared.ScheduleSnapshot{xyz}, nil).Times(2)
		ledger.EXPECT().Statuses(ctx, "XYZ-1234", monday(t)).Return(nil, nil)

		items, err := queries.NewBusSearchQueries(store, ledger).Search(ctx, "Colombo", "Kegalle", "2025-03-10")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(1200), items[0].Price)

		_, err = queries.NewBusSearchQueries(store, ledger).Search(ctx, "Kandy", "Colombo", "2025-03-10")
		assert.Error(t, err)
	})

	t.Run("nothing running is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockScheduleReadStore(ctrl)

		store.EXPECT().SchedulesForDay(ctx, gomock.Any()).Return(nil, nil)

		_, err := queries.NewBusSearchQueries(store, sharedmock.NewMockSeatLedger(ctrl)).Search(ctx, "Colombo", "Kandy", "2025-03-11")
		assert.True(t, errs.Is(err, errs.ErrScheduleNotFound))
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewBusSearchQueries(queriesmock.NewMockScheduleReadStore(ctrl), sharedmock.NewMockSeatLedger(ctrl))

		_, err := q.Search(ctx, " ", "Kandy", "2025-03-10")
		assert.True(t, errs.Is(err, errs.ErrValidation))
		_, err = q.Search(ctx, "Colombo", "Kandy", "tomorrow")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
