package commands

import (
	"context"

	"transit-booking/internal/domain/fare"
	"transit-booking/internal/pkg/errs"
)

type PriceSource interface {
	PricesForRoute(ctx context.Context, routeID string) ([]fare.Entry, error)
}

type FareResolver interface {
	Resolve(ctx context.Context, routeID, fromStop, toStop string) (fare.Fare, error)
}

type fareResolverImpl struct {
	prices PriceSource
}

func NewFareResolver(prices PriceSource) FareResolver {
	return &fareResolverImpl{prices: prices}
}

// Resolve fails with ErrFareNotFound for any pair the route does not price explicitly.
func (r *fareResolverImpl) Resolve(ctx context.Context, routeID, fromStop, toStop string) (fare.Fare, error) {
	entries, err := r.prices.PricesForRoute(ctx, routeID)
	if err != nil {
		return fare.Fare{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	table, err := fare.NewTable(routeID, entries)
	if err != nil {
		return fare.Fare{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	f, err := table.Resolve(fromStop, toStop)
	if err != nil {
		return fare.Fare{}, errs.Mark(errs.Wrapf(err, "route %s from %q to %q", routeID, fromStop, toStop), errs.ErrFareNotFound)
	}
	return f, nil
}
