package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxStarter is satisfied by *pgxpool.Pool and pgxmock pools.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Transactor struct {
	pool TxStarter
}

func NewTransactor(pool TxStarter) *Transactor {
	return &Transactor{pool: pool}
}

// WithinTx runs fn in a transaction. The context passed to fn carries the
// transaction, so repositories built on the pool join it through Executor.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
