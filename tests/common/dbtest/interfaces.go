//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx, so fixture reads can run inside a test transaction.
type DBLike interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
