package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"transit-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "transit-booking"

// RequiredTables must exist before the service takes traffic; the seat ledger and outbox write to them on the first request.
var RequiredTables = []string{
	"buses", "routes", "route_prices", "schedules",
	"seat_slots", "bookings", "notification_jobs",
}

// Connect opens the pool and pings it. The caller owns Close.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 10 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second

	params := poolCfg.ConnConfig.RuntimeParams
	params["application_name"] = applicationName
	// a stuck seat-slot row lock must not pin a request past the hold timeout
	if cfg.StatementTimeout > 0 {
		params["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// VerifySchema fails fast when the migration has not been applied.
func VerifySchema(ctx context.Context, pool *pgxpool.Pool) error {
	var missing []string
	for _, table := range RequiredTables {
		var exists bool
		if err := pool.QueryRow(ctx, "SELECT to_regclass('public.' || $1) IS NOT NULL", table).Scan(&exists); err != nil {
			return fmt.Errorf("failed to inspect schema: %w", err)
		}
		if !exists {
			missing = append(missing, table)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema not migrated, missing tables: %s", strings.Join(missing, ", "))
	}
	return nil
}
