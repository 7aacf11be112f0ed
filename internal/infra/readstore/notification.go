package readstore

import (
	"context"
	"encoding/json"
	"strings"

	"transit-booking/internal/infra"
	sqlc "transit-booking/internal/infra/sqlc/generated"
	"transit-booking/internal/pkg/pgconv"
	"transit-booking/internal/usecase/queries"
)

type NotificationReadQueries interface {
	GetPendingNotificationJobs(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) GetPendingJobs(ctx context.Context, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := s.queries.GetPendingNotificationJobs(ctx, s.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pending notification jobs", err)
	}

	result := make([]*queries.NotificationJobView, 0, len(rows))
	for _, row := range rows {
		result = append(result, toNotificationJobView(row))
	}
	return result, nil
}

// only the routing fields are decoded; the payload also holds the cancellation token
type jobEnvelope struct {
	TransactionID string `json:"transactionId"`
	To            string `json:"to"`
}

func toNotificationJobView(row sqlc.NotificationJobs) *queries.NotificationJobView {
	view := &queries.NotificationJobView{
		ID:        row.ID,
		Kind:      row.Kind,
		Topic:     row.Topic,
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		Attempts:  row.Attempts,
		Status:    row.Status,
		LastError: pgconv.StringPtrFromPgtype(row.LastError),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	// a job with an undecodable payload is still listed; it is exactly what an operator needs to see
	var env jobEnvelope
	if err := json.Unmarshal(row.Payload, &env); err == nil {
		view.TransactionID = env.TransactionID
		view.Recipient = maskEmail(env.To)
	}
	return view
}

// maskEmail keeps the first character of the local part: "amal@example.com" -> "a***@example.com".
func maskEmail(addr string) string {
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 {
		return ""
	}
	return addr[:1] + "***" + addr[at:]
}
