package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the subset shared by the pool and an open transaction, so
// repository methods can run inside or outside a transaction unchanged.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// DB is what repositories hold: a querier that can also start
// transactions. Satisfied by *pgxpool.Pool and by pgxmock pools in tests.
type DB interface {
	querier
	Begin(ctx context.Context) (pgx.Tx, error)
}
