package fare

import (
	"errors"
	"strings"
)

var (
	ErrFareNotFound  = errors.New("stop pair is not priced")
	ErrNegativePrice = errors.New("price cannot be negative")
)

type Entry struct {
	From  string
	To    string
	Price int64
}

// Fare is the resolved price of one directional stop pair, in whole currency units.
type Fare struct {
	RouteID string
	From    string
	To      string
	Amount  int64
}

type pairKey struct {
	from string
	to   string
}

// Table is the priced stop-pair list of one route.
type Table struct {
	routeID string
	prices  map[pairKey]Entry
}

func NewTable(routeID string, entries []Entry) (*Table, error) {
	t := &Table{
		routeID: routeID,
		prices:  make(map[pairKey]Entry, len(entries)),
	}
	for _, e := range entries {
		if e.Price < 0 {
			return nil, ErrNegativePrice
		}
		k := newPairKey(e.From, e.To)
		// first entry wins on duplicates
		if _, exists := t.prices[k]; !exists {
			t.prices[k] = e
		}
	}
	return t, nil
}

func (t *Table) RouteID() string {
	return t.routeID
}

// Resolve never infers a price: no reverse direction, no zero default, no nearest stop.
func (t *Table) Resolve(from, to string) (Fare, error) {
	e, ok := t.prices[newPairKey(from, to)]
	if !ok {
		return Fare{}, ErrFareNotFound
	}
	return Fare{
		RouteID: t.routeID,
		From:    e.From,
		To:      e.To,
		Amount:  e.Price,
	}, nil
}

func (t *Table) Len() int {
	return len(t.prices)
}

func newPairKey(from, to string) pairKey {
	return pairKey{from: normalizeStop(from), to: normalizeStop(to)}
}

func normalizeStop(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
