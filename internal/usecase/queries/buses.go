package queries

import (
	"context"
	"strings"

	"transit-booking/internal/domain/fare"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/pkg/errs"
	"transit-booking/internal/usecase/shared"
)

type BusSearchQueries interface {
	Search(ctx context.Context, boardingPlace, destinationPlace, date string) ([]*BusSearchItem, error)
}

type busSearchImpl struct {
	schedules ScheduleReadStore
	ledger    shared.SeatLedger
}

func NewBusSearchQueries(schedules ScheduleReadStore, ledger shared.SeatLedger) BusSearchQueries {
	return &busSearchImpl{schedules: schedules, ledger: ledger}
}

// Search lists the buses running on the date's weekday whose route prices the requested stop pair.
func (q *busSearchImpl) Search(ctx context.Context, boardingPlace, destinationPlace, date string) ([]*BusSearchItem, error) {
	boardingPlace = strings.TrimSpace(boardingPlace)
	destinationPlace = strings.TrimSpace(destinationPlace)
	if boardingPlace == "" || destinationPlace == "" {
		return nil, errs.Mark(errs.New("boarding and destination places are required"), errs.ErrValidation)
	}
	travelDate, err := seat.ParseTravelDate(date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	schedules, err := q.schedules.SchedulesForDay(ctx, travelDate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	items := make([]*BusSearchItem, 0, len(schedules))
	for _, s := range schedules {
		table, err := fare.NewTable(s.RouteID, s.Prices)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		f, err := table.Resolve(boardingPlace, destinationPlace)
		if err != nil {
			continue
		}

		occupied, err := q.ledger.Statuses(ctx, s.BusNumber, travelDate)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		available := s.Capacity - countWithin(occupied, s.Capacity)

		items = append(items, &BusSearchItem{
			ScheduleID:       s.ScheduleID,
			RouteID:          s.RouteID,
			RouteName:        s.RouteName,
			BusNumber:        s.BusNumber,
			BusType:          s.BusType,
			Capacity:         s.Capacity,
			AvailableSeats:   available,
			BoardingPlace:    f.From,
			DestinationPlace: f.To,
			Price:            f.Amount,
			DepartureTime:    s.DepartureTime,
			ArrivalTime:      s.ArrivalTime,
			Stops:            s.Stops,
		})
	}

	if len(items) == 0 {
		return nil, errs.Mark(errs.New("no buses found for the requested journey"), errs.ErrScheduleNotFound)
	}
	return items, nil
}

func countWithin(occupied map[int]seat.State, capacity int) int {
	n := 0
	for seatNumber, st := range occupied {
		if seatNumber <= capacity && st != seat.StateFree {
			n++
		}
	}
	return n
}
