// Package db wires the Postgres connection and transaction handling.
package db

import (
	"context"
	"database/sql"
)

// Executor is satisfied by both *sql.DB and *sql.Tx.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type TxManager interface {
	// RunInTx executes the given function within a database transaction.
	// It begins a transaction, calls the function with a new context
	// containing the transaction, and then commits or rolls back
	// based on the function's return value.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecutorFromContext returns the transaction stored in ctx, or fallback when there is none.
//
//nolint:ireturn //Callers need either a *sql.Tx or a *sql.DB.
func ExecutorFromContext(ctx context.Context, fallback Executor) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return fallback
}
