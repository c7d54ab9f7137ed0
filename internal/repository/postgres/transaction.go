package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/chairulsabri/backend-windows-explorer/internal/repository"
)

// TransactionManager implements repository.TransactionManager on top of database/sql.
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a new transaction manager.
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

var _ repository.TransactionManager = (*TransactionManager)(nil)

// ExecTx runs fn in a transaction stored in the context so repositories pick it up.
func (tm *TransactionManager) ExecTx(ctx context.Context, fn repository.TxFn) error {
	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	// Rollback after a successful commit returns sql.ErrTxDone and is ignored.
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Warn("rollback failed", "error", err)
		}
	}()

	if err := fn(repository.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// executor returns the transaction in ctx, or db when there is none.
func executor(ctx context.Context, db *sql.DB) repository.DBTX {
	if tx := repository.TxFrom(ctx); tx != nil {
		return tx
	}
	return db
}
