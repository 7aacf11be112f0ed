package seatledger

import (
	"context"
	"sync"
	"time"

	"transit-booking/internal/domain/booking"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type slot struct {
	mu     sync.Mutex
	state  seat.State
	holdID uuid.UUID
	heldAt time.Time
}

type busDay struct {
	busNumber string
	date      seat.TravelDate
}

// MemoryLedger keeps slot state in process. Every slot has its own mutex, so two requests only
// contend when they target the same (bus, date, seat). Slot entries are never removed; a freed
// slot keeps its mutex so a concurrent Reserve can never end up locking a detached entry.
type MemoryLedger struct {
	days  sync.Map // busDay -> *sync.Map (int -> *slot)
	clock clock.Clock
}

func NewMemoryLedger(clk clock.Clock) *MemoryLedger {
	return &MemoryLedger{clock: clk}
}

func (l *MemoryLedger) seats(bus string, date seat.TravelDate) *sync.Map {
	k := busDay{busNumber: bus, date: date}
	if v, ok := l.days.Load(k); ok {
		return v.(*sync.Map)
	}
	v, _ := l.days.LoadOrStore(k, &sync.Map{})
	return v.(*sync.Map)
}

func (l *MemoryLedger) slot(key seat.SlotKey) *slot {
	seats := l.seats(key.BusNumber, key.TravelDate)
	if v, ok := seats.Load(key.SeatNumber); ok {
		return v.(*slot)
	}
	v, _ := seats.LoadOrStore(key.SeatNumber, &slot{state: seat.StateFree})
	return v.(*slot)
}

func (l *MemoryLedger) Reserve(ctx context.Context, key seat.SlotKey) (seat.Hold, error) {
	if err := ctx.Err(); err != nil {
		return seat.Hold{}, err
	}

	s := l.slot(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != seat.StateFree {
		return seat.Hold{}, seat.ErrSeatUnavailable
	}

	hold := seat.Hold{ID: uuid.New(), Key: key, HeldAt: l.clock.Now()}
	s.state = seat.StateHeld
	s.holdID = hold.ID
	s.heldAt = hold.HeldAt
	return hold, nil
}

func (l *MemoryLedger) Commit(_ context.Context, hold seat.Hold) error {
	s := l.slot(hold.Key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.holdID != hold.ID {
		return seat.ErrInvalidHandle
	}
	switch s.state {
	case seat.StateHeld:
		s.state = seat.StateBooked
		return nil
	case seat.StateBooked:
		return nil
	default:
		return seat.ErrInvalidHandle
	}
}

func (l *MemoryLedger) Release(_ context.Context, hold seat.Hold) error {
	return l.free(hold, seat.StateHeld)
}

func (l *MemoryLedger) ReleaseBooked(_ context.Context, hold seat.Hold) error {
	return l.free(hold, seat.StateBooked)
}

func (l *MemoryLedger) free(hold seat.Hold, from seat.State) error {
	s := l.slot(hold.Key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != from || s.holdID != hold.ID {
		return seat.ErrInvalidHandle
	}
	s.state = seat.StateFree
	s.holdID = uuid.Nil
	s.heldAt = time.Time{}
	return nil
}

func (l *MemoryLedger) Status(_ context.Context, key seat.SlotKey) (seat.State, error) {
	v, ok := l.days.Load(busDay{busNumber: key.BusNumber, date: key.TravelDate})
	if !ok {
		return seat.StateFree, nil
	}
	sv, ok := v.(*sync.Map).Load(key.SeatNumber)
	if !ok {
		return seat.StateFree, nil
	}
	s := sv.(*slot)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, nil
}

func (l *MemoryLedger) Statuses(_ context.Context, busNumber string, date seat.TravelDate) (map[int]seat.State, error) {
	out := make(map[int]seat.State)
	v, ok := l.days.Load(busDay{busNumber: busNumber, date: date})
	if !ok {
		return out, nil
	}
	v.(*sync.Map).Range(func(k, v any) bool {
		s := v.(*slot)
		s.mu.Lock()
		st := s.state
		s.mu.Unlock()
		if st != seat.StateFree {
			out[k.(int)] = st
		}
		return true
	})
	return out, nil
}

func (l *MemoryLedger) SweepExpired(_ context.Context, cutoff time.Time) (int, error) {
	swept := 0
	l.days.Range(func(_, seats any) bool {
		seats.(*sync.Map).Range(func(_, v any) bool {
			s := v.(*slot)
			s.mu.Lock()
			if s.state == seat.StateHeld && s.heldAt.Before(cutoff) {
				s.state = seat.StateFree
				s.holdID = uuid.Nil
				s.heldAt = time.Time{}
				swept++
			}
			s.mu.Unlock()
			return true
		})
		return true
	})
	return swept, nil
}

// Restore marks the slots of confirmed bookings as booked under their original hold ids,
// so cancellation can release them after a restart.
func (l *MemoryLedger) Restore(bookings []*booking.Booking) int {
	restored := 0
	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		s := l.slot(b.Slot())
		s.mu.Lock()
		s.state = seat.StateBooked
		s.holdID = b.HoldID()
		s.heldAt = b.CreatedAt()
		s.mu.Unlock()
		restored++
	}
	return restored
}
