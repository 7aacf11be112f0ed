//go:build unit

package seatledger_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra/seatledger"
	"transit-booking/internal/pkg/clock"
	"transit-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func slotKey(t *testing.T, seatNumber int) seat.SlotKey {
	t.Helper()
	date, err := seat.ParseTravelDate("2025-03-10")
	require.NoError(t, err)
	k, err := seat.NewSlotKey("XYZ-1234", date, seatNumber)
	require.NoError(t, err)
	return k
}

func TestMemoryLedger_Lifecycle(t *testing.T) {
	ctx := context.Background()
	ledger := seatledger.NewMemoryLedger(clock.NewMockClock(baseTime))
	key := slotKey(t, 15)

	st, err := ledger.Status(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, seat.StateFree, st)

	hold, err := ledger.Reserve(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, key, hold.Key)
	assert.Equal(t, baseTime, hold.HeldAt)

	_, err = ledger.Reserve(ctx, key)
	assert.ErrorIs(t, err, seat.ErrSeatUnavailable, "a held seat is not free")

	require.NoError(t, ledger.Commit(ctx, hold))
	require.NoError(t, ledger.Commit(ctx, hold), "commit is idempotent for the same hold")
	st, _ = ledger.Status(ctx, key)
	assert.Equal(t, seat.StateBooked, st)

	assert.ErrorIs(t, ledger.Release(ctx, hold), seat.ErrInvalidHandle, "a booked seat is not rolled back by Release")

	require.NoError(t, ledger.ReleaseBooked(ctx, hold))
	st, _ = ledger.Status(ctx, key)
	assert.Equal(t, seat.StateFree, st)

	assert.ErrorIs(t, ledger.ReleaseBooked(ctx, hold), seat.ErrInvalidHandle, "double release never frees twice")
}

func TestMemoryLedger_ForeignHandle(t *testing.T) {
	ctx := context.Background()
	ledger := seatledger.NewMemoryLedger(clock.NewMockClock(baseTime))
	key := slotKey(t, 3)

	hold, err := ledger.Reserve(ctx, key)
	require.NoError(t, err)

	stranger := seat.Hold{ID: uuid.New(), Key: key}
	assert.ErrorIs(t, ledger.Commit(ctx, stranger), seat.ErrInvalidHandle)
	assert.ErrorIs(t, ledger.Release(ctx, stranger), seat.ErrInvalidHandle)

	require.NoError(t, ledger.Release(ctx, hold))
	assert.ErrorIs(t, ledger.Commit(ctx, hold), seat.ErrInvalidHandle, "a released hold cannot be committed")

	again, err := ledger.Reserve(ctx, key)
	require.NoError(t, err)
	assert.NotEqual(t, hold.ID, again.ID)
}

func TestMemoryLedger_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ledger := seatledger.NewMemoryLedger(clock.NewMockClock(baseTime))

	_, err := ledger.Reserve(ctx, slotKey(t, 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryLedger_ConcurrentReserveSameSeat(t *testing.T) {
	ctx := context.Background()
	ledger := seatledger.NewMemoryLedger(clock.NewRealClock())
	key := slotKey(t, 15)

	const workers = 64
	var (
		wg      sync.WaitGroup
		winners atomic.Int32
		losers  atomic.Int32
	)
	start := make(chan struct{})
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := ledger.Reserve(ctx, key)
			switch {
			case err == nil:
				winners.Add(1)
			case assert.ErrorIs(t, err, seat.ErrSeatUnavailable):
				losers.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
	assert.Equal(t, int32(workers-1), losers.Load())
}

func TestMemoryLedger_DifferentSeatsDoNotContend(t *testing.T) {
	ctx := context.Background()
	ledger := seatledger.NewMemoryLedger(clock.NewRealClock())

	const seats = 40
	var wg sync.WaitGroup
	errCh := make(chan error, seats)
	for n := 1; n <= seats; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hold, err := ledger.Reserve(ctx, slotKey(t, n))
			if err != nil {
				errCh <- err
				return
			}
			errCh <- ledger.Commit(ctx, hold)
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		assert.NoError(t, err)
	}

	statuses, err := ledger.Statuses(ctx, "XYZ-1234", slotKey(t, 1).TravelDate)
	require.NoError(t, err)
	assert.Len(t, statuses, seats)
}

func TestMemoryLedger_SweepExpired(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(baseTime)
	ledger := seatledger.NewMemoryLedger(clk)

	stale, err := ledger.Reserve(ctx, slotKey(t, 1))
	require.NoError(t, err)
	booked, err := ledger.Reserve(ctx, slotKey(t, 2))
	require.NoError(t, err)
	require.NoError(t, ledger.Commit(ctx, booked))

	clk.Add(10 * time.Minute)
	fresh, err := ledger.Reserve(ctx, slotKey(t, 3))
	require.NoError(t, err)

	swept, err := ledger.SweepExpired(ctx, clk.Now().Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	st, _ := ledger.Status(ctx, stale.Key)
	assert.Equal(t, seat.StateFree, st)
	st, _ = ledger.Status(ctx, booked.Key)
	assert.Equal(t, seat.StateBooked, st, "booked seats are never swept")
	st, _ = ledger.Status(ctx, fresh.Key)
	assert.Equal(t, seat.StateHeld, st)

	assert.ErrorIs(t, ledger.Commit(ctx, stale), seat.ErrInvalidHandle, "a swept hold is dead")
}

func TestMemoryLedger_Restore(t *testing.T) {
	ctx := context.Background()
	ledger := seatledger.NewMemoryLedger(clock.NewMockClock(baseTime))

	confirmed, _ := builder.NewBookingBuilder().MustBuildDomain()
	cancelled, _ := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.SeatNumber = 16 }).MustBuildDomain()
	require.NoError(t, cancelled.Cancel(baseTime))

	restored := ledger.Restore(nil)
	assert.Zero(t, restored)
	assert.Equal(t, 1, ledger.Restore([]*booking.Booking{confirmed, cancelled}))

	st, _ := ledger.Status(ctx, confirmed.Slot())
	assert.Equal(t, seat.StateBooked, st)
	st, _ = ledger.Status(ctx, cancelled.Slot())
	assert.Equal(t, seat.StateFree, st)

	require.NoError(t, ledger.ReleaseBooked(ctx, confirmed.Hold()), "restored slots keep the original hold id")
}
