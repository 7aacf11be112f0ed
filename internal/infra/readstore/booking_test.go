//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/infra"
	"transit-booking/internal/infra/readstore"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/usecase/queries"
	"transit-booking/tests/common/builder"
	readstoremock "transit-booking/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTransactionID = "01950f3e-7a10-7c7e-9d0a-0c4f1f7e2b11"

// =============================================================================
// Aggregate Tests
// =============================================================================

func TestBookingReadStore_Aggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: entity keeps the token digest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		token := "plain-token"
		row := builder.NewBookingBuilder().BuildInfra(testTransactionID, booking.DigestToken(token))
		mockQueries.EXPECT().GetBookingByTransactionID(ctx, gomock.Any(), testTransactionID).Return(row, nil)

		actual, err := store.Aggregate(ctx, testTransactionID)
		require.NoError(t, err)

		assert.Equal(t, testTransactionID, actual.TransactionID())
		assert.True(t, actual.IsConfirmed())
		assert.True(t, actual.VerifyCancellationToken(token))
		assert.False(t, actual.VerifyCancellationToken("other"))
		assert.Equal(t, 15, actual.Slot().SeatNumber)
		assert.Equal(t, "2025-03-10", actual.Slot().TravelDate.String())
		assert.Equal(t, int64(1800), actual.Fare().Amount)
	})

	t.Run("error: booking not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().GetBookingByTransactionID(ctx, gomock.Any(), "missing").Return(sqlc.Bookings{}, pgx.ErrNoRows)

		_, err := store.Aggregate(ctx, "missing")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

// =============================================================================
// FindByTransactionID Tests
// =============================================================================

func TestBookingReadStore_FindByTransactionID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	cancelledAt := b.Now.Add(2 * time.Hour)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingReadQueries)
		expected      *queries.BookingView
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: confirmed booking",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingByTransactionID(ctx, gomock.Any(), testTransactionID).
					Return(b.BuildInfra(testTransactionID, []byte("digest")), nil)
			},
			expected: b.BuildView(testTransactionID),
		},
		{
			name: "success: cancelled booking carries its cancellation time",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				row := b.BuildInfra(testTransactionID, []byte("digest"))
				row.Status = booking.StatusCancelled.String()
				row.UpdatedAt = pgtype.Timestamptz{Time: cancelledAt, Valid: true}
				row.CancelledAt = pgtype.Timestamptz{Time: cancelledAt, Valid: true}
				mock.EXPECT().GetBookingByTransactionID(ctx, gomock.Any(), testTransactionID).Return(row, nil)
			},
			expected: func() *queries.BookingView {
				v := b.BuildView(testTransactionID)
				v.Status = booking.StatusCancelled.String()
				v.UpdatedAt = cancelledAt
				v.CancelledAt = &cancelledAt
				return v
			}(),
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingByTransactionID(ctx, gomock.Any(), testTransactionID).Return(sqlc.Bookings{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database connection lost",
			setupMock: func(mock *readstoremock.MockBookingReadQueries) {
				mock.EXPECT().GetBookingByTransactionID(ctx, gomock.Any(), testTransactionID).Return(sqlc.Bookings{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			tc.setupMock(mockQueries)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

			actual, err := store.FindByTransactionID(ctx, testTransactionID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("FindByTransactionID() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// =============================================================================
// ListByBusAndDate / ConfirmedFrom Tests
// =============================================================================

func TestBookingReadStore_ListByBusAndDate(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2025-03-10")

	t.Run("success: rows mapped in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		first := builder.NewBookingBuilder()
		second := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.SeatNumber = 16 })
		mockQueries.EXPECT().ListBookingsByBusAndDate(ctx, gomock.Any(), sqlc.ListBookingsByBusAndDateParams{
			BusNumber:  "XYZ-1234",
			TravelDate: pgtype.Date{Time: date.Time(), Valid: true},
		}).Return([]sqlc.Bookings{
			first.BuildInfra("tx-1", nil),
			second.BuildInfra("tx-2", nil),
		}, nil)

		actual, err := store.ListByBusAndDate(ctx, "XYZ-1234", date)
		require.NoError(t, err)
		require.Len(t, actual, 2)
		assert.Equal(t, "tx-1", actual[0].TransactionID)
		assert.Equal(t, 16, actual[1].SeatNumber)
	})

	t.Run("error: database connection lost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBookingsByBusAndDate(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ListByBusAndDate(ctx, "XYZ-1234", date)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingReadStore_ConfirmedFrom(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t, "2025-03-10")

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
	store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListConfirmedBookingsFrom(ctx, gomock.Any(), pgtype.Date{Time: date.Time(), Valid: true}).
		Return([]sqlc.Bookings{builder.NewBookingBuilder().BuildInfra("tx-1", nil)}, nil)

	actual, err := store.ConfirmedFrom(ctx, date)
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, "XYZ-1234", actual[0].Slot().BusNumber)
	assert.True(t, actual[0].IsConfirmed())
}
