package shared

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// CompensationAttempts bounds how often one undo step is tried before it is left to the hold sweeper.
	CompensationAttempts = 3

	compensationBaseBackoff = 25 * time.Millisecond
)

type compensation struct {
	name string
	fn   func(ctx context.Context) error
}

// Saga collects undo steps for side effects that already happened. Compensate runs them newest first.
// A step that fails is retried with backoff unless it returns a backoff.Permanent error.
type Saga struct {
	logger *slog.Logger
	steps  []compensation
}

func NewSaga(logger *slog.Logger) *Saga {
	return &Saga{logger: logger}
}

func (s *Saga) Push(name string, fn func(ctx context.Context) error) {
	s.steps = append(s.steps, compensation{name: name, fn: fn})
}

// Forget drops every pending compensation once the side effects are final.
func (s *Saga) Forget() {
	s.steps = nil
}

func (s *Saga) Pending() int {
	return len(s.steps)
}

// Compensate ignores ctx cancellation so a dropped client connection cannot strand a hold.
func (s *Saga) Compensate(ctx context.Context) {
	detached := context.WithoutCancel(ctx)
	for i := len(s.steps) - 1; i >= 0; i-- {
		step := s.steps[i]
		if err := s.run(detached, step); err != nil {
			s.logger.Error("compensation failed", "step", step.name, "error", err)
			continue
		}
		s.logger.Info("compensation applied", "step", step.name)
	}
	s.steps = nil
}

func (s *Saga) run(ctx context.Context, step compensation) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = compensationBaseBackoff
	b.MaxElapsedTime = 0

	op := func() error { return step.fn(ctx) }
	notify := func(err error, wait time.Duration) {
		s.logger.Warn("retrying compensation", "step", step.name, "wait_ms", wait.Milliseconds(), "error", err)
	}
	return backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(b, CompensationAttempts-1), ctx), notify)
}
