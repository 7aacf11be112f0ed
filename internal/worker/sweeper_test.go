//go:build unit

package worker_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/pkg/config"
	"transit-booking/internal/worker"
	sharedmock "transit-booking/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHoldSweeper_SweepOnce(t *testing.T) {
	cfg := config.NewTestConfig()
	cutoff := testNow.Add(-cfg.Booking.HoldTimeout)

	testCases := []struct {
		name        string
		swept       int
		sweepErr    error
		expectedErr bool
		expectLog   bool
	}{
		{name: "success: nothing expired", swept: 0},
		{name: "success: expired holds released", swept: 3, expectLog: true},
		{name: "error: ledger unavailable", sweepErr: errors.New("connection refused"), expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ledger := sharedmock.NewMockSeatLedger(ctrl)
			var buf bytes.Buffer
			sweeper := worker.NewHoldSweeper(ledger, clock.NewMockClock(testNow), cfg, slog.New(slog.NewTextHandler(&buf, nil)))

			ledger.EXPECT().SweepExpired(gomock.Any(), cutoff).Return(tc.swept, tc.sweepErr)

			n, err := sweeper.SweepOnce(context.Background())

			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.swept, n)
			assert.Equal(t, tc.expectLog, bytes.Contains(buf.Bytes(), []byte("released expired seat holds")))
		})
	}
}

func TestHoldSweeper_Run(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Booking.SweepInterval = 5 * time.Millisecond

	ctrl := gomock.NewController(t)
	ledger := sharedmock.NewMockSeatLedger(ctrl)
	sweeps := make(chan struct{}, 16)
	ledger.EXPECT().SweepExpired(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int, error) {
			select {
			case sweeps <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(2)

	sweeper := worker.NewHoldSweeper(ledger, clock.NewMockClock(testNow), cfg, slog.New(slog.DiscardHandler))

	group := worker.NewGroup()
	group.Go(sweeper.Run)

	for range 2 {
		select {
		case <-sweeps:
		case <-time.After(time.Second):
			require.Fail(t, "sweeper did not tick")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, group.Stop(ctx))
}

func TestGroup_StopTimesOut(t *testing.T) {
	group := worker.NewGroup()
	block := make(chan struct{})
	defer close(block)
	group.Go(func(context.Context) { <-block })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, group.Stop(ctx), context.DeadlineExceeded)
}
