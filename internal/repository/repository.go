// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and contain no business logic beyond query construction.
package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrInvalidReference is returned when a write points at a parent folder that does not exist.
var ErrInvalidReference = errors.New("referenced folder does not exist")

// DBTX is the query surface shared by *sql.DB and *sql.Tx.
// Repositories run against it so the same code works inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxFn is a function that runs within a transaction.
type TxFn func(ctx context.Context) error

// TransactionManager runs a set of repository calls atomically.
type TransactionManager interface {
	// ExecTx executes fn within a transaction. Repositories called with the ctx passed to fn join it.
	ExecTx(ctx context.Context, fn TxFn) error
}

type txContextKey struct{}

// WithTx stores a transaction in the context.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// TxFrom returns the transaction stored in ctx, or nil.
func TxFrom(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txContextKey{}).(*sql.Tx)
	return tx
}
