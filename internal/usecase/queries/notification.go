package queries

import (
	"context"

	"transit-booking/internal/pkg/errs"
)

const (
	defaultPendingLimit = 50
	maxPendingLimit     = 200
)

type NotificationReadStore interface {
	GetPendingJobs(ctx context.Context, limit int32) ([]*NotificationJobView, error)
}

type NotificationQueries interface {
	ListPending(ctx context.Context, limit int) ([]*NotificationJobView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListPending(ctx context.Context, limit int) ([]*NotificationJobView, error) {
	if limit <= 0 {
		limit = defaultPendingLimit
	}
	if limit > maxPendingLimit {
		limit = maxPendingLimit
	}

	jobs, err := q.store.GetPendingJobs(ctx, int32(limit)) // #nosec G115 -- clamped above
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return jobs, nil
}
