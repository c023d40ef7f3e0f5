package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

type txCtxKey int

const txKey txCtxKey = iota

func NewContextWithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context.
// It's used by repositories to get the current transaction if available.
func TxFromContext(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(txKey).(*sql.Tx); ok {
		return tx
	}
	return nil
}

type SQLTxManager struct {
	db *sql.DB
}

var _ TxManager = (*SQLTxManager)(nil)

func (tm *SQLTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txCtx := NewContextWithTx(ctx, tx)

	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		}

		if err != nil {
			rollback(tx)
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	err = fn(txCtx)
	return err
}

func NewSQLTxManager(db *sql.DB) *SQLTxManager {
	return &SQLTxManager{db: db}
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		slog.Error("failed to rollback transaction", "reason", err)
	}
}
