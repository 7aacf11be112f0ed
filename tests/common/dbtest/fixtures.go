//go:build unit || e2e

package dbtest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference data seeded for every test: bus XYZ-1234 runs route-1 (Colombo -> Kandy) on Mondays.
const (
	SeedBusNumber        = "XYZ-1234"
	SeedCapacity         = 40
	SeedRouteID          = "route-1"
	SeedScheduleID       = "sch-5678"
	SeedMonday           = "2025-03-10"
	SeedColomboKandyFare = int64(1800)
)

// NotificationJobStatus returns "" when no job references the transaction yet.
func NotificationJobStatus(t *testing.T, db DBLike, transactionID string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM notification_jobs WHERE payload->>'transactionId' = $1 ORDER BY created_at DESC LIMIT 1",
		transactionID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ""
	}
	require.NoError(t, err)
	return status
}

func CountConfirmedBookings(t *testing.T, db DBLike, busNumber string, seatNumber int) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE bus_number = $1 AND seat_number = $2 AND status = 'confirmed'",
		busNumber, seatNumber).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO buses (bus_number, bus_type, capacity) VALUES
		    ('XYZ-1234', 'Luxury', 40),
		    ('ABC-9999', 'Normal', 2)
		ON CONFLICT (bus_number) DO NOTHING;

		INSERT INTO routes (route_id, name, stops) VALUES
		    ('route-1', 'Colombo - Kandy', '{Colombo,Kadawatha,Kegalle,Kandy}')
		ON CONFLICT (route_id) DO NOTHING;

		INSERT INTO route_prices (route_id, position, from_stop, to_stop, price) VALUES
		    ('route-1', 0, 'Colombo', 'Kandy', 1800),
		    ('route-1', 1, 'Colombo', 'Kegalle', 1200),
		    ('route-1', 2, 'Kadawatha', 'Kandy', 1500)
		ON CONFLICT (route_id, position) DO NOTHING;

		INSERT INTO schedules (schedule_id, bus_number, route_id, days, departure_time, arrival_time) VALUES
		    ('sch-5678', 'XYZ-1234', 'route-1', '{Monday,Wednesday}', '08:00', '11:30'),
		    ('sch-0002', 'ABC-9999', 'route-1', '{Monday}', '13:00', '16:30')
		ON CONFLICT (schedule_id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
