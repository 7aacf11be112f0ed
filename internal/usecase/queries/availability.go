package queries

import (
	"context"

	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/shared"
)

type ScheduleReadStore interface {
	ScheduleForBus(ctx context.Context, busNumber string, date seat.TravelDate) (*shared.ScheduleSnapshot, error)
	SchedulesForDay(ctx context.Context, date seat.TravelDate) ([]*shared.ScheduleSnapshot, error)
}

type SeatAvailabilityQueries interface {
	GetSeatMap(ctx context.Context, busNumber, date string) (*SeatMapView, error)
}

type seatAvailabilityImpl struct {
	schedules ScheduleReadStore
	ledger    shared.SeatLedger
}

func NewSeatAvailabilityQueries(schedules ScheduleReadStore, ledger shared.SeatLedger) SeatAvailabilityQueries {
	return &seatAvailabilityImpl{schedules: schedules, ledger: ledger}
}

func (q *seatAvailabilityImpl) GetSeatMap(ctx context.Context, busNumber, date string) (*SeatMapView, error) {
	if busNumber == "" {
		return nil, errs.Mark(seat.ErrInvalidBusNumber, errs.ErrValidation)
	}
	travelDate, err := seat.ParseTravelDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	schedule, err := q.schedules.ScheduleForBus(ctx, busNumber, travelDate)
	if err != nil {
		return nil, markScheduleErr(err)
	}

	occupied, err := q.ledger.Statuses(ctx, busNumber, travelDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	seats := make([]SeatStatusView, 0, schedule.Capacity)
	for n := 1; n <= schedule.Capacity; n++ {
		seats = append(seats, SeatStatusView{SeatNumber: n, Status: seatStatusLabel(occupied[n])})
	}

	return &SeatMapView{
		BusNumber: schedule.BusNumber,
		Date:      travelDate.String(),
		Capacity:  schedule.Capacity,
		Seats:     seats,
	}, nil
}

func seatStatusLabel(s seat.State) string {
	switch s {
	case seat.StateBooked:
		return SeatStatusBooked
	case seat.StateHeld:
		return SeatStatusHeld
	default:
		return SeatStatusAvailable
	}
}

func markScheduleErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrScheduleNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
