package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor is implemented by repositories that can open their own Postgres
// transactions. Rollback after a successful Commit is a no-op.
type Transactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
