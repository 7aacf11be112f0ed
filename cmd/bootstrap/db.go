package bootstrap

import (
	"context"
	"log/slog"

	"transit-booking/internal/infra/db"
	"transit-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB refuses to start against an unmigrated database; otherwise the first booking would fail mid-saga after the seat was reserved.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.VerifySchema(ctx, pool); err != nil {
				return err
			}
			logger.Info("database ready",
				"host", cfg.DB.Host,
				"db", cfg.DB.DBName,
				"max_conns", pool.Config().MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				"acquired_conns", stat.AcquiredConns(),
				"total_conns", stat.TotalConns())
			pool.Close()
			return nil
		},
	})

	return pool, nil
}
