//go:build unit

package shared_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"transit-booking/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSaga_CompensatesNewestFirst(t *testing.T) {
	saga := shared.NewSaga(discardLogger())
	var order []string
	saga.Push("release hold", func(context.Context) error {
		order = append(order, "release hold")
		return nil
	})
	saga.Push("void charge", func(context.Context) error {
		order = append(order, "void charge")
		return backoff.Permanent(errors.New("charge already settled"))
	})
	saga.Push("drop draft", func(context.Context) error {
		order = append(order, "drop draft")
		return nil
	})
	assert.Equal(t, 3, saga.Pending())

	saga.Compensate(context.Background())

	assert.Equal(t, []string{"drop draft", "void charge", "release hold"}, order, "a failing step does not stop the rest")
	assert.Zero(t, saga.Pending())

	saga.Compensate(context.Background())
	assert.Len(t, order, 3, "compensations run once")
}

func TestSaga_RetriesTransientFailure(t *testing.T) {
	saga := shared.NewSaga(discardLogger())
	calls := 0
	saga.Push("release hold", func(context.Context) error {
		calls++
		if calls == 1 {
			return errors.New("connection reset")
		}
		return nil
	})

	saga.Compensate(context.Background())

	assert.Equal(t, 2, calls)
}

func TestSaga_GivesUpAfterBoundedAttempts(t *testing.T) {
	saga := shared.NewSaga(discardLogger())
	calls := 0
	saga.Push("release hold", func(context.Context) error {
		calls++
		return errors.New("ledger unavailable")
	})

	saga.Compensate(context.Background())

	assert.Equal(t, shared.CompensationAttempts, calls)
	assert.Zero(t, saga.Pending())
}

func TestSaga_PermanentFailureIsNotRetried(t *testing.T) {
	saga := shared.NewSaga(discardLogger())
	calls := 0
	saga.Push("release hold", func(context.Context) error {
		calls++
		return backoff.Permanent(errors.New("hold already swept"))
	})

	saga.Compensate(context.Background())

	assert.Equal(t, 1, calls)
}

func TestSaga_IgnoresCallerCancellation(t *testing.T) {
	saga := shared.NewSaga(discardLogger())
	calls := 0
	var sawErr error
	saga.Push("release hold", func(ctx context.Context) error {
		calls++
		sawErr = ctx.Err()
		if calls == 1 {
			return errors.New("connection reset")
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	saga.Compensate(ctx)

	assert.NoError(t, sawErr)
	assert.Equal(t, 2, calls, "a cancelled caller does not cut the retries short")
}

func TestSaga_Forget(t *testing.T) {
	saga := shared.NewSaga(discardLogger())
	called := false
	saga.Push("release hold", func(context.Context) error {
		called = true
		return nil
	})

	saga.Forget()
	saga.Compensate(context.Background())

	assert.False(t, called)
}
