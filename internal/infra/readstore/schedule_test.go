//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"transit-booking/internal/domain/fare"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/infra/readstore"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/usecase/shared"
	readstoremock "transit-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func mustDate(t *testing.T, s string) seat.TravelDate {
	t.Helper()
	d, err := seat.ParseTravelDate(s)
	require.NoError(t, err)
	return d
}

// =============================================================================
// ScheduleForBus Tests
// =============================================================================

func TestScheduleReadStore_ScheduleForBus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockScheduleReadQueries)
		expected      *shared.ScheduleSnapshot
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: monday service found",
			setupMock: func(mock *readstoremock.MockScheduleReadQueries) {
				mock.EXPECT().GetScheduleForBus(ctx, gomock.Any(), sqlc.GetScheduleForBusParams{
					BusNumber: "XYZ-1234",
					DayName:   "Monday",
				}).Return(sqlc.GetScheduleForBusRow{
					ScheduleID:    "sch-5678",
					BusNumber:     "XYZ-1234",
					RouteID:       "route-1",
					RouteName:     "Colombo - Kandy",
					Stops:         []string{"Colombo", "Kadawatha", "Kegalle", "Kandy"},
					Capacity:      40,
					BusType:       "Luxury",
					DepartureTime: "08:00",
					ArrivalTime:   "11:30",
				}, nil)
			},
			expected: &shared.ScheduleSnapshot{
				ScheduleID:    "sch-5678",
				BusNumber:     "XYZ-1234",
				RouteID:       "route-1",
				RouteName:     "Colombo - Kandy",
				BusType:       "Luxury",
				Capacity:      40,
				DepartureTime: "08:00",
				ArrivalTime:   "11:30",
				Stops:         []string{"Colombo", "Kadawatha", "Kegalle", "Kandy"},
			},
		},
		{
			name: "error: no service that weekday",
			setupMock: func(mock *readstoremock.MockScheduleReadQueries) {
				mock.EXPECT().GetScheduleForBus(ctx, gomock.Any(), gomock.Any()).Return(sqlc.GetScheduleForBusRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database connection lost",
			setupMock: func(mock *readstoremock.MockScheduleReadQueries) {
				mock.EXPECT().GetScheduleForBus(ctx, gomock.Any(), gomock.Any()).Return(sqlc.GetScheduleForBusRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{})

			actual, err := store.ScheduleForBus(ctx, "XYZ-1234", mustDate(t, "2025-03-10"))

			if tc.expectedError {
				require.Error(t, err)
				assert.Nil(t, actual)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("ScheduleForBus() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// =============================================================================
// SchedulesForDay Tests
// =============================================================================

func TestScheduleReadStore_SchedulesForDay(t *testing.T) {
	ctx := context.Background()
	wednesday := mustDate(t, "2025-03-12")

	t.Run("success: prices loaded once per route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListSchedulesForDay(ctx, gomock.Any(), "Wednesday").Return([]sqlc.ListSchedulesForDayRow{
			{ScheduleID: "sch-1", BusNumber: "XYZ-1234", RouteID: "route-1", Capacity: 40},
			{ScheduleID: "sch-2", BusNumber: "ABC-9999", RouteID: "route-1", Capacity: 2},
		}, nil)
		mockQueries.EXPECT().ListRoutePrices(ctx, gomock.Any(), "route-1").Return([]sqlc.RoutePrices{
			{RouteID: "route-1", Position: 1, FromStop: "Colombo", ToStop: "Kandy", Price: 1800},
		}, nil).Times(1)

		actual, err := store.SchedulesForDay(ctx, wednesday)
		require.NoError(t, err)
		require.Len(t, actual, 2)

		expectedPrices := []fare.Entry{{From: "Colombo", To: "Kandy", Price: 1800}}
		for _, s := range actual {
			if diff := cmp.Diff(expectedPrices, s.Prices); diff != "" {
				t.Errorf("%s prices mismatch (-want +got):\n%s", s.BusNumber, diff)
			}
		}
		assert.Equal(t, 2, actual[1].Capacity)
	})

	t.Run("success: nothing operates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListSchedulesForDay(ctx, gomock.Any(), "Wednesday").Return(nil, nil)

		actual, err := store.SchedulesForDay(ctx, wednesday)
		require.NoError(t, err)
		assert.Empty(t, actual)
	})

	t.Run("error: price lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListSchedulesForDay(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListSchedulesForDayRow{
			{ScheduleID: "sch-1", RouteID: "route-1"},
		}, nil)
		mockQueries.EXPECT().ListRoutePrices(ctx, gomock.Any(), "route-1").Return(nil, errDBConnectionLost)

		_, err := store.SchedulesForDay(ctx, wednesday)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: listing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
		store := readstore.NewScheduleReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListSchedulesForDay(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.SchedulesForDay(ctx, wednesday)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
