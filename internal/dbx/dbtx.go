// Package dbx holds the database plumbing shared by the records, events and
// alerts repositories: the DBTX handle that both *sql.DB and *sql.Tx
// satisfy, and WithTx for multi-statement writes that must land together.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the repositories are written against. Handing a
// repository a *sql.DB runs each statement on the pool; handing it a *sql.Tx
// scopes the same repository code to one transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with the transactional handle, and
// commits on success or rolls back on error/panic. Panics are rethrown.
//
// The verification pipeline uses it to write an event together with the
// alerts it raised, so the history the alert rules query never sees one
// without the other:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    if err := rm.Events(tx).Add(ctx, event); err != nil {
//	        return err
//	    }
//	    return rm.Alerts(tx).Add(ctx, alert)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
