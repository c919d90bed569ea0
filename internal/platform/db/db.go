package db

import (
	"context"
	"database/sql"
	"errors"
)

// ErrUnavailable marks queries that failed because no database connection
// is configured or reachable. Handlers map it to 502 connection_error.
var ErrUnavailable = errors.New("db: database is not configured or unreachable")

// Executor is satisfied by both *sql.DB and *sql.Tx so repositories can run
// inside or outside a transaction.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxManager runs a function within a database transaction. The transaction
// travels in the context; commit or rollback follows from the function's
// return value.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
