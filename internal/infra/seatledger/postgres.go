package seatledger

import (
	"context"
	"time"

	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/pkg/clock"
	"transit-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SeatSlotQueries interface {
	ReserveSeatSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveSeatSlotParams) (sqlc.ReserveSeatSlotRow, error)
	CommitSeatSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CommitSeatSlotParams) (int64, error)
	ReleaseHeldSeatSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseHeldSeatSlotParams) (int64, error)
	ReleaseBookedSeatSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseBookedSeatSlotParams) (int64, error)
	GetSeatSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.GetSeatSlotParams) (sqlc.SeatSlots, error)
	ListOccupiedSeatSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupiedSeatSlotsParams) ([]sqlc.ListOccupiedSeatSlotsRow, error)
	SweepExpiredSeatSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.SweepExpiredSeatSlotsParams) (int64, error)
}

// PostgresLedger stores slot state in seat_slots. Every transition is a single conditional statement,
// so the row lock taken by that statement is the per-key critical section and several service
// instances can share one ledger.
type PostgresLedger struct {
	queries SeatSlotQueries
	db      sqlc.DBTX
	clock   clock.Clock
}

func NewPostgresLedger(queries SeatSlotQueries, db sqlc.DBTX, clk clock.Clock) *PostgresLedger {
	return &PostgresLedger{queries: queries, db: db, clock: clk}
}

func (l *PostgresLedger) Reserve(ctx context.Context, key seat.SlotKey) (seat.Hold, error) {
	hold := seat.Hold{ID: uuid.New(), Key: key, HeldAt: l.clock.Now()}

	_, err := l.queries.ReserveSeatSlot(ctx, l.db, sqlc.ReserveSeatSlotParams{
		BusNumber:  key.BusNumber,
		TravelDate: pgconv.DateToPgtype(key.TravelDate.Time()),
		SeatNumber: seatNumber(key),
		HoldID:     pgconv.UUIDToPgtype(hold.ID),
		HeldAt:     pgconv.TimeToPgtype(hold.HeldAt),
	})
	if err != nil {
		// the conflict branch returns no row when the slot is not free
		if pgconv.IsNoRows(err) {
			return seat.Hold{}, seat.ErrSeatUnavailable
		}
		return seat.Hold{}, infra.WrapRepoErr("failed to reserve seat slot", err)
	}
	return hold, nil
}

func (l *PostgresLedger) Commit(ctx context.Context, hold seat.Hold) error {
	n, err := l.queries.CommitSeatSlot(ctx, l.db, sqlc.CommitSeatSlotParams{
		BusNumber:  hold.Key.BusNumber,
		TravelDate: pgconv.DateToPgtype(hold.Key.TravelDate.Time()),
		SeatNumber: seatNumber(hold.Key),
		HoldID:     pgconv.UUIDToPgtype(hold.ID),
		UpdatedAt:  pgconv.TimeToPgtype(l.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to commit seat slot", err)
	}
	if n == 0 {
		return seat.ErrInvalidHandle
	}
	return nil
}

func (l *PostgresLedger) Release(ctx context.Context, hold seat.Hold) error {
	n, err := l.queries.ReleaseHeldSeatSlot(ctx, l.db, sqlc.ReleaseHeldSeatSlotParams{
		BusNumber:  hold.Key.BusNumber,
		TravelDate: pgconv.DateToPgtype(hold.Key.TravelDate.Time()),
		SeatNumber: seatNumber(hold.Key),
		HoldID:     pgconv.UUIDToPgtype(hold.ID),
		UpdatedAt:  pgconv.TimeToPgtype(l.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release held seat slot", err)
	}
	if n == 0 {
		return seat.ErrInvalidHandle
	}
	return nil
}

func (l *PostgresLedger) ReleaseBooked(ctx context.Context, hold seat.Hold) error {
	n, err := l.queries.ReleaseBookedSeatSlot(ctx, l.db, sqlc.ReleaseBookedSeatSlotParams{
		BusNumber:  hold.Key.BusNumber,
		TravelDate: pgconv.DateToPgtype(hold.Key.TravelDate.Time()),
		SeatNumber: seatNumber(hold.Key),
		HoldID:     pgconv.UUIDToPgtype(hold.ID),
		UpdatedAt:  pgconv.TimeToPgtype(l.clock.Now()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to release booked seat slot", err)
	}
	if n == 0 {
		return seat.ErrInvalidHandle
	}
	return nil
}

func (l *PostgresLedger) Status(ctx context.Context, key seat.SlotKey) (seat.State, error) {
	row, err := l.queries.GetSeatSlot(ctx, l.db, sqlc.GetSeatSlotParams{
		BusNumber:  key.BusNumber,
		TravelDate: pgconv.DateToPgtype(key.TravelDate.Time()),
		SeatNumber: seatNumber(key),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return seat.StateFree, nil
		}
		return "", infra.WrapRepoErr("failed to read seat slot", err)
	}
	return seat.State(row.State), nil
}

func (l *PostgresLedger) Statuses(ctx context.Context, busNumber string, date seat.TravelDate) (map[int]seat.State, error) {
	rows, err := l.queries.ListOccupiedSeatSlots(ctx, l.db, sqlc.ListOccupiedSeatSlotsParams{
		BusNumber:  busNumber,
		TravelDate: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seat slots", err)
	}

	out := make(map[int]seat.State, len(rows))
	for _, row := range rows {
		out[int(row.SeatNumber)] = seat.State(row.State)
	}
	return out, nil
}

func (l *PostgresLedger) SweepExpired(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := l.queries.SweepExpiredSeatSlots(ctx, l.db, sqlc.SweepExpiredSeatSlotsParams{
		HeldAt:    pgtype.Timestamptz{Time: cutoff, Valid: true},
		UpdatedAt: pgconv.TimeToPgtype(l.clock.Now()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sweep expired holds", err)
	}
	return int(n), nil
}

func seatNumber(key seat.SlotKey) int32 {
	return int32(key.SeatNumber) // #nosec G115 -- seat numbers are bounded by bus capacity
}
