// Package dbx lets repositories run on either a pool or a transaction.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is what *sql.DB and *sql.Tx have in common for running queries.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SnapshotOptions is a read-only, repeatable-read transaction. Used when a
// reader must see one consistent version of a table.
var SnapshotOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// WithTx runs fn inside a transaction started with opts. The transaction is
// committed when fn returns nil and rolled back otherwise. A panic in fn
// rolls back and keeps unwinding.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	committed = true
	return tx.Commit()
}
