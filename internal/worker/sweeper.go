package worker

import (
	"context"
	"log/slog"
	"time"

	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/pkg/config"
	"transit-booking/internal/usecase/shared"
)

// HoldSweeper frees holds left behind by orchestrations that died between reserve and commit.
type HoldSweeper struct {
	ledger      shared.SeatLedger
	clock       clock.Clock
	holdTimeout time.Duration
	interval    time.Duration
	logger      *slog.Logger
}

func NewHoldSweeper(ledger shared.SeatLedger, clk clock.Clock, cfg config.Config, logger *slog.Logger) *HoldSweeper {
	return &HoldSweeper{
		ledger:      ledger,
		clock:       clk,
		holdTimeout: cfg.Booking.HoldTimeout,
		interval:    cfg.Booking.SweepInterval,
		logger:      logger,
	}
}

func (s *HoldSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
				s.logger.Warn("hold sweep failed", "error", err)
			}
		}
	}
}

func (s *HoldSweeper) SweepOnce(ctx context.Context) (int, error) {
	cutoff := s.clock.Now().Add(-s.holdTimeout)
	n, err := s.ledger.SweepExpired(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Warn("released expired seat holds", "count", n, "cutoff", cutoff)
	}
	return n, nil
}
