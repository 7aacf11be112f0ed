//go:build unit

package seatledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/infra/seatledger"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/pkg/clock"
	seatledgermock "transit-booking/tests/mock/seatledger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPostgresLedger(t *testing.T) (*seatledger.PostgresLedger, *seatledgermock.MockSeatSlotQueries, sqlc.DBTX) {
	t.Helper()
	ctrl := gomock.NewController(t)
	queries := seatledgermock.NewMockSeatSlotQueries(ctrl)
	db := &mockDBTX{}
	return seatledger.NewPostgresLedger(queries, db, clock.NewMockClock(baseTime)), queries, db
}

func TestPostgresLedger_Reserve(t *testing.T) {
	ctx := context.Background()
	key := slotKey(t, 15)

	testCases := []struct {
		name       string
		setupMock  func(*seatledgermock.MockSeatSlotQueries, sqlc.DBTX)
		errIs      error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: free slot becomes held",
			setupMock: func(m *seatledgermock.MockSeatSlotQueries, db sqlc.DBTX) {
				m.EXPECT().ReserveSeatSlot(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ReserveSeatSlotParams) (sqlc.ReserveSeatSlotRow, error) {
						assert.Equal(t, "XYZ-1234", arg.BusNumber)
						assert.Equal(t, int32(15), arg.SeatNumber)
						assert.True(t, arg.HoldID.Valid)
						assert.Equal(t, baseTime, arg.HeldAt.Time)
						return sqlc.ReserveSeatSlotRow{HoldID: arg.HoldID, HeldAt: arg.HeldAt}, nil
					})
			},
		},
		{
			name: "error: no row means the slot is taken",
			setupMock: func(m *seatledgermock.MockSeatSlotQueries, db sqlc.DBTX) {
				m.EXPECT().ReserveSeatSlot(ctx, db, gomock.Any()).Return(sqlc.ReserveSeatSlotRow{}, pgx.ErrNoRows)
			},
			errIs: seat.ErrSeatUnavailable,
		},
		{
			name: "error: database failure",
			setupMock: func(m *seatledgermock.MockSeatSlotQueries, db sqlc.DBTX) {
				m.EXPECT().ReserveSeatSlot(ctx, db, gomock.Any()).Return(sqlc.ReserveSeatSlotRow{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: serialization failure is a conflict",
			setupMock: func(m *seatledgermock.MockSeatSlotQueries, db sqlc.DBTX) {
				m.EXPECT().ReserveSeatSlot(ctx, db, gomock.Any()).Return(sqlc.ReserveSeatSlotRow{}, &pgconn.PgError{Code: "40001"})
			},
			expectKind: infra.KindConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ledger, queries, db := newPostgresLedger(t)
			tc.setupMock(queries, db)

			hold, err := ledger.Reserve(ctx, key)
			switch {
			case tc.errIs != nil:
				assert.ErrorIs(t, err, tc.errIs)
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got %v", tc.expectKind, err)
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, hold.ID)
				assert.Equal(t, key, hold.Key)
			}
		})
	}
}

func TestPostgresLedger_Transitions(t *testing.T) {
	ctx := context.Background()
	hold := seat.Hold{ID: uuid.New(), Key: slotKey(t, 15), HeldAt: baseTime}

	type call func(*seatledger.PostgresLedger) error
	transitions := []struct {
		name   string
		expect func(*seatledgermock.MockSeatSlotQueries, int64, error)
		call   call
	}{
		{
			name: "commit",
			expect: func(m *seatledgermock.MockSeatSlotQueries, n int64, err error) {
				m.EXPECT().CommitSeatSlot(ctx, gomock.Any(), gomock.Any()).Return(n, err)
			},
			call: func(l *seatledger.PostgresLedger) error { return l.Commit(ctx, hold) },
		},
		{
			name: "release",
			expect: func(m *seatledgermock.MockSeatSlotQueries, n int64, err error) {
				m.EXPECT().ReleaseHeldSeatSlot(ctx, gomock.Any(), gomock.Any()).Return(n, err)
			},
			call: func(l *seatledger.PostgresLedger) error { return l.Release(ctx, hold) },
		},
		{
			name: "release booked",
			expect: func(m *seatledgermock.MockSeatSlotQueries, n int64, err error) {
				m.EXPECT().ReleaseBookedSeatSlot(ctx, gomock.Any(), gomock.Any()).Return(n, err)
			},
			call: func(l *seatledger.PostgresLedger) error { return l.ReleaseBooked(ctx, hold) },
		},
	}

	for _, tr := range transitions {
		t.Run(tr.name+": one row changed", func(t *testing.T) {
			ledger, queries, _ := newPostgresLedger(t)
			tr.expect(queries, 1, nil)
			assert.NoError(t, tr.call(ledger))
		})
		t.Run(tr.name+": no row changed is an invalid handle", func(t *testing.T) {
			ledger, queries, _ := newPostgresLedger(t)
			tr.expect(queries, 0, nil)
			assert.ErrorIs(t, tr.call(ledger), seat.ErrInvalidHandle)
		})
		t.Run(tr.name+": database failure", func(t *testing.T) {
			ledger, queries, _ := newPostgresLedger(t)
			tr.expect(queries, 0, errors.New("boom"))
			err := tr.call(ledger)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		})
	}
}

func TestPostgresLedger_Status(t *testing.T) {
	ctx := context.Background()
	key := slotKey(t, 15)

	t.Run("missing row is free", func(t *testing.T) {
		ledger, queries, _ := newPostgresLedger(t)
		queries.EXPECT().GetSeatSlot(ctx, gomock.Any(), gomock.Any()).Return(sqlc.SeatSlots{}, pgx.ErrNoRows)

		st, err := ledger.Status(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, seat.StateFree, st)
	})

	t.Run("row state is returned", func(t *testing.T) {
		ledger, queries, _ := newPostgresLedger(t)
		queries.EXPECT().GetSeatSlot(ctx, gomock.Any(), gomock.Any()).Return(sqlc.SeatSlots{State: "held"}, nil)

		st, err := ledger.Status(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, seat.StateHeld, st)
	})

	t.Run("statuses maps seat numbers", func(t *testing.T) {
		ledger, queries, _ := newPostgresLedger(t)
		queries.EXPECT().ListOccupiedSeatSlots(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListOccupiedSeatSlotsRow{
			{SeatNumber: 3, State: "held"},
			{SeatNumber: 15, State: "booked"},
		}, nil)

		got, err := ledger.Statuses(ctx, key.BusNumber, key.TravelDate)
		require.NoError(t, err)
		assert.Equal(t, map[int]seat.State{3: seat.StateHeld, 15: seat.StateBooked}, got)
	})
}

func TestPostgresLedger_SweepExpired(t *testing.T) {
	ctx := context.Background()
	cutoff := baseTime.Add(-5 * time.Minute)

	ledger, queries, _ := newPostgresLedger(t)
	queries.EXPECT().SweepExpiredSeatSlots(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.SweepExpiredSeatSlotsParams) (int64, error) {
			assert.Equal(t, cutoff, arg.HeldAt.Time)
			return 4, nil
		})

	n, err := ledger.SweepExpired(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

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
