package readstore

import (
	"context"

	"transit-booking/internal/domain/fare"
	"transit-booking/internal/domain/seat"
	"transit-booking/internal/infra"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/pkg/pgconv"
	"transit-booking/internal/usecase/shared"
)

type ScheduleReadQueries interface {
	GetScheduleForBus(ctx context.Context, db sqlc.DBTX, arg sqlc.GetScheduleForBusParams) (sqlc.GetScheduleForBusRow, error)
	ListSchedulesForDay(ctx context.Context, db sqlc.DBTX, dayName string) ([]sqlc.ListSchedulesForDayRow, error)
	ListRoutePrices(ctx context.Context, db sqlc.DBTX, routeID string) ([]sqlc.RoutePrices, error)
}

type ScheduleReadStore struct {
	queries ScheduleReadQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleReadQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

// ScheduleForBus leaves Prices empty; fares go through PricesForRoute.
// It returns KindNotFound for an unknown or inactive bus and for a bus with no service on that weekday.
func (s *ScheduleReadStore) ScheduleForBus(ctx context.Context, busNumber string, date seat.TravelDate) (*shared.ScheduleSnapshot, error) {
	row, err := s.queries.GetScheduleForBus(ctx, s.db, sqlc.GetScheduleForBusParams{
		BusNumber: busNumber,
		DayName:   date.Weekday().String(),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule for bus", err)
	}

	return &shared.ScheduleSnapshot{
		ScheduleID:    row.ScheduleID,
		BusNumber:     row.BusNumber,
		RouteID:       row.RouteID,
		RouteName:     row.RouteName,
		BusType:       row.BusType,
		Capacity:      int(row.Capacity),
		DepartureTime: row.DepartureTime,
		ArrivalTime:   row.ArrivalTime,
		Stops:         row.Stops,
	}, nil
}

func (s *ScheduleReadStore) SchedulesForDay(ctx context.Context, date seat.TravelDate) ([]*shared.ScheduleSnapshot, error) {
	rows, err := s.queries.ListSchedulesForDay(ctx, s.db, date.Weekday().String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedules for day", err)
	}

	pricesByRoute := make(map[string][]fare.Entry)
	result := make([]*shared.ScheduleSnapshot, 0, len(rows))
	for _, row := range rows {
		prices, ok := pricesByRoute[row.RouteID]
		if !ok {
			prices, err = s.PricesForRoute(ctx, row.RouteID)
			if err != nil {
				return nil, err
			}
			pricesByRoute[row.RouteID] = prices
		}

		result = append(result, &shared.ScheduleSnapshot{
			ScheduleID:    row.ScheduleID,
			BusNumber:     row.BusNumber,
			RouteID:       row.RouteID,
			RouteName:     row.RouteName,
			BusType:       row.BusType,
			Capacity:      int(row.Capacity),
			DepartureTime: row.DepartureTime,
			ArrivalTime:   row.ArrivalTime,
			Stops:         row.Stops,
			Prices:        prices,
		})
	}

	return result, nil
}

func (s *ScheduleReadStore) PricesForRoute(ctx context.Context, routeID string) ([]fare.Entry, error) {
	rows, err := s.queries.ListRoutePrices(ctx, s.db, routeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list route prices", err)
	}

	entries := make([]fare.Entry, len(rows))
	for i, row := range rows {
		entries[i] = fare.Entry{From: row.FromStop, To: row.ToStop, Price: row.Price}
	}
	return entries, nil
}
